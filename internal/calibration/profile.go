// Package calibration measures the Comba→Toom-Cook squaring crossover on the
// current hardware and caches the result in a JSON profile.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/mpcalc/internal/config"
)

// CurrentProfileVersion is bumped whenever the profile format or the
// calibration methodology changes, invalidating older cached profiles.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the file name used for the cached calibration
// profile in the user's home directory.
const DefaultProfileFileName = ".mpcalc_calibration.json"

// CalibrationProfile stores the calibrated threshold together with the
// hardware fingerprint it was measured on. A profile is only applied when
// the fingerprint still matches the running machine.
type CalibrationProfile struct {
	ProfileVersion int    `json:"profile_version"`
	NumCPU         int    `json:"num_cpu"`
	GOARCH         string `json:"goarch"`
	GOOS           string `json:"goos"`
	GoVersion      string `json:"go_version"`
	WordSize       int    `json:"word_size"`

	OptimalToomSqrThreshold int `json:"optimal_toom_sqr_threshold"`

	// CalibrationDigits is the operand size (in digits) used for measurement.
	CalibrationDigits int    `json:"calibration_digits"`
	CalibrationTime   string `json:"calibration_time"`

	CalibratedAt time.Time `json:"calibrated_at"`
}

// NewProfile creates a profile stamped with the current hardware fingerprint.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
	}
}

// IsValid reports whether the profile was calibrated on hardware matching the
// current machine and uses the current profile format.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String returns a human-readable one-line summary of the profile.
func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("calibration profile v%d: toom-sqr=%d digits (measured at %d digits on %d×%s/%s, %s)",
		p.ProfileVersion, p.OptimalToomSqrThreshold, p.CalibrationDigits,
		p.NumCPU, p.GOARCH, p.GOOS, p.CalibratedAt.Format(time.RFC3339))
}

// SaveProfile writes the profile as indented JSON to the given path.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling calibration profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	return nil
}

// loadProfile reads and decodes a profile from the given path.
func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calibration profile: %w", err)
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding calibration profile: %w", err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path, or returns a fresh profile
// for the current hardware when none exists or it cannot be decoded.
// The second return value reports whether an existing profile was loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	if p, err := loadProfile(path); err == nil {
		return p, true
	}
	return NewProfile(), false
}

// GetDefaultProfilePath returns the default profile location in the user's
// home directory, falling back to the working directory when the home
// directory cannot be determined.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadCachedCalibration applies a cached calibration profile to the
// configuration. Explicit threshold values (flag or environment) are never
// overridden. Profiles calibrated on different hardware are ignored.
//
// The second return value reports whether a profile was applied.
func LoadCachedCalibration(cfg config.AppConfig, profilePath string) (config.AppConfig, bool) {
	if cfg.ToomSqrThreshold != 0 {
		return cfg, false
	}
	if profilePath == "" {
		profilePath = GetDefaultProfilePath()
	}
	p, err := loadProfile(profilePath)
	if err != nil || !p.IsValid() {
		return cfg, false
	}
	if p.OptimalToomSqrThreshold <= 0 {
		return cfg, false
	}
	cfg.ToomSqrThreshold = p.OptimalToomSqrThreshold
	return cfg, true
}
