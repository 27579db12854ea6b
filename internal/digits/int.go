package digits

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// Int is a multiple-precision integer: a little-endian vector of 32-bit
// digits, a significant-digit count and a sign. The zero value is a usable
// representation of 0.
//
// Invariants maintained by every operation:
//   - used <= len(dp), and every digit at index >= used is physically zero.
//     Later code is allowed to read the full vector, so stale high digits are
//     actively cleared whenever used shrinks.
//   - the canonical zero has used == 0 and neg == false.
//
// An Int must not be copied by value after first use: operations on aliased
// destinations exchange the underlying digit vector, and a value copy would
// end up sharing (or losing) that buffer.
type Int struct {
	dp   []Digit // digit vector; len(dp) is the current capacity
	used int     // number of significant digits
	neg  bool    // sign; never set when used == 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Container Operations
// ─────────────────────────────────────────────────────────────────────────────

// grow ensures capacity for at least n digits, preserving the current value.
// Digits beyond used remain zero after growth. Growth past maxDigits fails
// with apperrors.AllocError and leaves z unchanged.
func (z *Int) grow(n int) error {
	if n <= len(z.dp) {
		return nil
	}
	if n > maxDigits {
		return apperrors.AllocError{Digits: n}
	}
	buf := acquireDigits(n)
	copy(buf, z.dp[:z.used])
	releaseDigits(z.dp)
	z.dp = buf
	return nil
}

// clamp drops high-order zero digits and normalizes the sign of zero.
// Clamping is idempotent.
func (z *Int) clamp() {
	for z.used > 0 && z.dp[z.used-1] == 0 {
		z.used--
	}
	if z.used == 0 {
		z.neg = false
	}
}

// zeroRange zeroes the digits in [from, to). Used to uphold the
// high-digits-are-zero invariant whenever used shrinks.
func (z *Int) zeroRange(from, to int) {
	if from < to {
		clear(z.dp[from:to])
	}
}

// copyFrom makes z an independent copy of x.
func (z *Int) copyFrom(x *Int) error {
	if z == x {
		return nil
	}
	if err := z.grow(x.used); err != nil {
		return err
	}
	old := z.used
	copy(z.dp, x.dp[:x.used])
	z.used = x.used
	z.neg = x.neg
	z.zeroRange(z.used, old)
	z.clamp()
	return nil
}

// adopt transfers t's digit vector into z, releasing z's previous buffer to
// the pool. This is the ownership swap used on aliased destinations: results
// are materialized into a private temporary and only committed on success.
// t is zeroed, so a later release of t is a no-op.
func (z *Int) adopt(t *Int) {
	releaseDigits(z.dp)
	*z = *t
	*t = Int{}
}

// release returns z's digit vector to the pool and resets z to the zero
// value. Only scratch Ints that cannot have escaped may be released.
func (z *Int) release() {
	releaseDigits(z.dp)
	*z = Int{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors and Conversions
// ─────────────────────────────────────────────────────────────────────────────

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.used == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.used == 0 }

// Set makes z a copy of x.
func (z *Int) Set(x *Int) error { return z.copyFrom(x) }

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	if err := z.grow(2); err != nil {
		panic(err) // unreachable: 2 <= maxDigits
	}
	old := z.used
	z.dp[0] = Digit(v)
	z.dp[1] = Digit(v >> digitBits)
	z.used = 2
	z.neg = false
	z.zeroRange(z.used, old)
	z.clamp()
	return z
}

// SetBig sets z to the value of v.
func (z *Int) SetBig(v *big.Int) error {
	words := v.Bits()
	const perWord = bits.UintSize / digitBits
	if err := z.grow(len(words) * perWord); err != nil {
		return err
	}
	old := z.used
	i := 0
	for _, w := range words {
		for b := 0; b < bits.UintSize; b += digitBits {
			z.dp[i] = Digit(w >> b)
			i++
		}
	}
	z.used = i
	z.neg = v.Sign() < 0
	z.zeroRange(z.used, old)
	z.clamp()
	return nil
}

// Big returns the value of x as a new *big.Int.
func (x *Int) Big() *big.Int {
	buf := make([]byte, 4*x.used)
	for i := 0; i < x.used; i++ {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], x.dp[i])
	}
	v := new(big.Int).SetBytes(buf)
	if x.neg {
		v.Neg(v)
	}
	return v
}

// Digits returns a copy of x's significant digits, least-significant first.
func (x *Int) Digits() []Digit {
	out := make([]Digit, x.used)
	copy(out, x.dp[:x.used])
	return out
}

// Used returns the number of significant digits of x.
func (x *Int) Used() int { return x.used }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// cmpMag compares |x| and |y|, returning -1, 0 or +1.
func cmpMag(x, y *Int) int {
	if x.used != y.used {
		if x.used < y.used {
			return -1
		}
		return 1
	}
	for i := x.used - 1; i >= 0; i-- {
		if x.dp[i] != y.dp[i] {
			if x.dp[i] < y.dp[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	if x.neg {
		return -cmpMag(x, y)
	}
	return cmpMag(x, y)
}
