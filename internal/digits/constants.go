package digits

// ─────────────────────────────────────────────────────────────────────────────
// Representation Constants
// ─────────────────────────────────────────────────────────────────────────────

// Digit is one limb of a multiple-precision integer. Digits use the full
// 32-bit width, so the radix is 2^32 and truncating a 64-bit carry word to
// Digit needs no masking.
type Digit = uint32

const (
	// digitBits is the width W of one digit. The carry word (uint64) is 2W
	// wide, which is the minimum required to hold one digit product plus an
	// incoming digit of carry without overflow.
	digitBits = 32

	// maxDigits bounds the size of any digit vector. The cap keeps the total
	// bit count representable in an int32 (mirroring the container limit of
	// the reference arithmetic libraries) and is what makes allocation
	// failure a concrete, testable error rather than an abstract one.
	maxDigits = ((1 << 31) - 3) / digitBits
)

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultToomSqrThreshold is the default operand size, in digits, at
	// which Sqr switches from Comba squaring to Toom-Cook 3-way squaring.
	//
	// Below this threshold the O(n^2) Comba loop wins on constant factors;
	// above it the reduction from 6 to 5 half-size squarings pays for the
	// interpolation overhead. 80 digits (2560 bits) is a reasonable midpoint
	// for modern 64-bit hardware; run the calibration mode to tune it for a
	// specific machine.
	DefaultToomSqrThreshold = 80

	// MinToomSqrDigits is the floor below which Toom-Cook squaring is never
	// used regardless of the configured threshold: the three-way split needs
	// at least one full digit per chunk to make progress.
	MinToomSqrDigits = 3
)

// ToomSqrThreshold is the active Comba→Toom-Cook squaring crossover, in
// digits. It is resolved once at startup (flag > env > calibration profile >
// adaptive estimate > default) and must not be changed while operations are
// in flight.
var ToomSqrThreshold = DefaultToomSqrThreshold
