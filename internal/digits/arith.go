// This file implements signed addition/subtraction and the small exact
// helpers consumed by the Toom-Cook interpolation: multiply by a small
// constant, power-of-two shifts, digit shifts, and exact division by 2 and 3.

package digits

import (
	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Signed Addition / Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// addMag computes |z| = |x| + |y|. It sets used and zeroes vacated digits but
// leaves sign and clamping to the caller.
func (z *Int) addMag(x, y *Int) error {
	if x.used < y.used {
		x, y = y, x
	}
	max, min := x.used, y.used
	old := z.used
	if err := z.grow(max + 1); err != nil {
		return err
	}
	var c uint64
	for i := 0; i < min; i++ {
		c += uint64(x.dp[i]) + uint64(y.dp[i])
		z.dp[i] = Digit(c)
		c >>= digitBits
	}
	for i := min; i < max; i++ {
		c += uint64(x.dp[i])
		z.dp[i] = Digit(c)
		c >>= digitBits
	}
	z.dp[max] = Digit(c)
	z.used = max + 1
	z.zeroRange(z.used, old)
	return nil
}

// subMag computes |z| = |x| - |y|. The caller guarantees |x| >= |y|.
// Like addMag it leaves sign and clamping to the caller.
func (z *Int) subMag(x, y *Int) error {
	old := z.used
	if err := z.grow(x.used); err != nil {
		return err
	}
	var borrow uint64
	for i := 0; i < y.used; i++ {
		v := uint64(x.dp[i]) - uint64(y.dp[i]) - borrow
		z.dp[i] = Digit(v)
		borrow = v >> 63
	}
	for i := y.used; i < x.used; i++ {
		v := uint64(x.dp[i]) - borrow
		z.dp[i] = Digit(v)
		borrow = v >> 63
	}
	z.used = x.used
	z.zeroRange(z.used, old)
	return nil
}

// Add sets z = x + y. z may alias x or y.
func (z *Int) Add(x, y *Int) error {
	if x.neg == y.neg {
		neg := x.neg
		if err := z.addMag(x, y); err != nil {
			return err
		}
		z.neg = neg
		z.clamp()
		return nil
	}
	// opposite signs: subtract the smaller magnitude from the larger, the
	// result takes the sign of the larger
	if cmpMag(x, y) < 0 {
		x, y = y, x
	}
	neg := x.neg
	if err := z.subMag(x, y); err != nil {
		return err
	}
	z.neg = neg
	z.clamp()
	return nil
}

// Sub sets z = x - y. z may alias x or y.
func (z *Int) Sub(x, y *Int) error {
	if x.neg != y.neg {
		neg := x.neg
		if err := z.addMag(x, y); err != nil {
			return err
		}
		z.neg = neg
		z.clamp()
		return nil
	}
	var neg bool
	if cmpMag(x, y) >= 0 {
		neg = x.neg
		if err := z.subMag(x, y); err != nil {
			return err
		}
	} else {
		neg = !x.neg
		if err := z.subMag(y, x); err != nil {
			return err
		}
	}
	z.neg = neg
	z.clamp()
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Small-Constant Helpers
// ─────────────────────────────────────────────────────────────────────────────

// mulDigit multiplies z in place by a single digit. The sign is unchanged.
func (z *Int) mulDigit(d Digit) error {
	if z.used == 0 {
		return nil
	}
	if err := z.grow(z.used + 1); err != nil {
		return err
	}
	var c uint64
	for i := 0; i < z.used; i++ {
		c += uint64(z.dp[i]) * uint64(d)
		z.dp[i] = Digit(c)
		c >>= digitBits
	}
	if c != 0 {
		z.dp[z.used] = Digit(c)
		z.used++
	}
	z.clamp()
	return nil
}

// shl shifts z left in place by the given number of bits.
func (z *Int) shl(shift uint) error {
	if z.used == 0 || shift == 0 {
		return nil
	}
	d := int(shift / digitBits)
	b := shift % digitBits
	if err := z.grow(z.used + d + 1); err != nil {
		return err
	}
	if d > 0 {
		if err := z.lshd(d); err != nil {
			return err
		}
	}
	if b > 0 {
		var carry Digit
		for i := 0; i < z.used; i++ {
			v := z.dp[i]
			z.dp[i] = v<<b | carry
			carry = v >> (digitBits - b)
		}
		if carry != 0 {
			z.dp[z.used] = carry
			z.used++
		}
	}
	return nil
}

// lshd inserts k all-zero low-order digits, i.e. multiplies by radix^k.
// Pure index movement, no arithmetic.
func (z *Int) lshd(k int) error {
	if k <= 0 || z.used == 0 {
		return nil
	}
	if err := z.grow(z.used + k); err != nil {
		return err
	}
	copy(z.dp[k:z.used+k], z.dp[:z.used])
	clear(z.dp[:k])
	z.used += k
	return nil
}

// rshd discards the k low-order digits, i.e. divides by radix^k with
// truncation.
func (z *Int) rshd(k int) {
	if k <= 0 {
		return
	}
	if k >= z.used {
		z.zeroRange(0, z.used)
		z.used = 0
		z.neg = false
		return
	}
	copy(z.dp, z.dp[k:z.used])
	z.zeroRange(z.used-k, z.used)
	z.used -= k
}

// mod2d reduces z in place modulo 2^bitCount, keeping the sign of a nonzero
// result.
func (z *Int) mod2d(bitCount int) {
	if bitCount <= 0 {
		z.zeroRange(0, z.used)
		z.used = 0
		z.neg = false
		return
	}
	d := bitCount / digitBits
	b := uint(bitCount % digitBits)
	if d >= z.used {
		return
	}
	if b == 0 {
		z.zeroRange(d, z.used)
		z.used = d
	} else {
		z.dp[d] &= (1 << b) - 1
		z.zeroRange(d+1, z.used)
		z.used = d + 1
	}
	z.clamp()
}

// ─────────────────────────────────────────────────────────────────────────────
// Exact Divisions
// ─────────────────────────────────────────────────────────────────────────────

// div2Exact divides z in place by 2. The caller guarantees exactness by
// construction; an odd value indicates an algebra defect upstream and is
// reported as an InconsistencyError rather than silently truncated.
func (z *Int) div2Exact() error {
	if z.used == 0 {
		return nil
	}
	if z.dp[0]&1 != 0 {
		return apperrors.InconsistencyError{Op: "div2", Remainder: 1}
	}
	var carry Digit
	for i := z.used - 1; i >= 0; i-- {
		v := z.dp[i]
		z.dp[i] = v>>1 | carry<<(digitBits-1)
		carry = v & 1
	}
	z.clamp()
	return nil
}

// div3Exact divides z in place by 3, top digit down. A nonzero final
// remainder indicates an algebra defect upstream and is reported as an
// InconsistencyError.
func (z *Int) div3Exact() error {
	var r uint64
	for i := z.used - 1; i >= 0; i-- {
		w := r<<digitBits | uint64(z.dp[i])
		z.dp[i] = Digit(w / 3)
		r = w % 3
	}
	if r != 0 {
		return apperrors.InconsistencyError{Op: "div3", Remainder: r}
	}
	z.clamp()
	return nil
}
