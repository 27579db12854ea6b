package calibration

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
)

func TestAutoCalibrate(t *testing.T) {
	saved := digits.ToomSqrThreshold
	defer func() { digits.ToomSqrThreshold = saved }()

	profile := filepath.Join(t.TempDir(), "profile.json")
	cfg := config.AppConfig{CalibrationProfile: profile}

	var buf bytes.Buffer
	updated, ok := AutoCalibrate(context.Background(), cfg, &buf)
	if !ok {
		t.Fatal("AutoCalibrate reported failure")
	}
	if updated.ToomSqrThreshold < digits.MinToomSqrDigits {
		t.Errorf("measured threshold = %d, below the minimum operand size", updated.ToomSqrThreshold)
	}
	if digits.ToomSqrThreshold != saved {
		t.Errorf("ToomSqrThreshold = %d after calibration, want %d restored",
			digits.ToomSqrThreshold, saved)
	}
	if !strings.Contains(buf.String(), "Auto-calibration") {
		t.Errorf("output missing banner: %q", buf.String())
	}

	cached, err := loadProfile(profile)
	if err != nil {
		t.Fatalf("profile not cached: %v", err)
	}
	if cached.OptimalToomSqrThreshold != updated.ToomSqrThreshold {
		t.Errorf("cached threshold = %d, applied %d",
			cached.OptimalToomSqrThreshold, updated.ToomSqrThreshold)
	}
}

func TestAutoCalibrateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.AppConfig{CalibrationProfile: filepath.Join(t.TempDir(), "profile.json")}
	if _, ok := AutoCalibrate(ctx, cfg, io.Discard); ok {
		t.Error("cancelled AutoCalibrate reported success")
	}
}
