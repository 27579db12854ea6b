// This file implements the column-wise (Comba) multiplier and its squaring
// specialization. Columns of the product are computed first and carries are
// resolved per column through a fixed three-limb accumulator, which keeps the
// inner loops free of conditional carry handling.

package digits

// carry3 is the three-limb column accumulator (c0, c1, c2) used by the Comba
// loops. It is a plain value type with explicit width rather than a wider
// native integer, because the limb count is a derived property of the digit
// width:
//
// Each accumulated product p satisfies p <= (2^32-1)^2, so c0 + p < 2^64 fits
// the carry word, and its high half is < 2^32. Adding that high half to c1
// yields at most 2^33 - 1, whose own high half is 0 or 1 — so each product
// feeds at most one unit into c2. A column absorbs at most min(x.used, y.used)
// products (2·used+1 terms when squaring), and used <= maxDigits < 2^27, so
// c2 can never overflow its 32 bits. This holds for every operand size the
// container can represent; it is a hard numeric invariant, not a tuning
// assumption.
type carry3 struct {
	c0, c1, c2 Digit
}

// add accumulates one partial product into the column.
func (c *carry3) add(p uint64) {
	w := uint64(c.c0) + p
	c.c0 = Digit(w)
	w = uint64(c.c1) + w>>digitBits
	c.c1 = Digit(w)
	c.c2 += Digit(w >> digitBits)
}

// shift finishes the current column: it returns the column digit and slides
// the carry state down for the next column.
func (c *carry3) shift() Digit {
	d := c.c0
	c.c0, c.c1, c.c2 = c.c1, c.c2, 0
	return d
}

// mulComba computes |z| ≡ |x|·|y| mod radix^digs, producing at most digs
// output digits. Producing fewer digits than the full product is what makes
// cheap half-products possible for reduction algorithms.
//
// If z aliases x or y the columns are computed into a private temporary whose
// buffer is swapped into z only on success; otherwise z is grown in place.
// On growth failure z is left untouched. The sign of z is left to the caller.
func mulComba(x, y, z *Int, digs int) error {
	// x·y mod radix^digs with digs <= 0 is canonically zero.
	if digs <= 0 {
		z.zeroRange(0, z.used)
		z.used = 0
		z.neg = false
		return nil
	}

	var tmp Int
	dst := z
	if z == x || z == y {
		dst = &tmp
	}
	if err := dst.grow(digs); err != nil {
		return err
	}

	// number of output digits to produce
	pa := min(digs, x.used+y.used)

	var acc carry3
	for ix := 0; ix < pa; ix++ {
		// offsets of the first contributing pair for this column
		ty := min(y.used-1, ix)
		tx := ix - ty

		// number of digit pairs (x[tx+iz], y[ty-iz]) that feed column ix
		iy := min(x.used-tx, ty+1)

		for iz := 0; iz < iy; iz++ {
			acc.add(uint64(x.dp[tx+iz]) * uint64(y.dp[ty-iz]))
		}
		dst.dp[ix] = acc.shift()
	}

	old := dst.used
	dst.used = pa
	// clear digits that existed in the old copy of the destination
	dst.zeroRange(pa, old)
	dst.clamp()

	if dst == &tmp {
		z.adopt(&tmp)
	}
	return nil
}

// sqrComba computes |z| = x², reusing the Comba column scheme. Only the
// unique off-diagonal pairs are iterated; each contributes twice, and even
// columns additionally take the diagonal square. z may alias x.
func sqrComba(x, z *Int) error {
	digs := x.used + x.used

	var tmp Int
	dst := z
	if z == x {
		dst = &tmp
	}
	if err := dst.grow(digs); err != nil {
		return err
	}

	var acc carry3
	for ix := 0; ix < digs; ix++ {
		ty := min(x.used-1, ix)
		tx := ix - ty
		iy := min(x.used-tx, ty+1)

		// unique off-diagonal pairs only; each is accumulated twice. The
		// product is pushed through the accumulator twice instead of being
		// doubled up front, because 2·p can exceed the carry word.
		iy = min(iy, (ty-tx+1)>>1)
		for iz := 0; iz < iy; iz++ {
			p := uint64(x.dp[tx+iz]) * uint64(x.dp[ty-iz])
			acc.add(p)
			acc.add(p)
		}
		if ix&1 == 0 {
			d := uint64(x.dp[ix>>1])
			acc.add(d * d)
		}
		dst.dp[ix] = acc.shift()
	}

	old := dst.used
	dst.used = digs
	dst.zeroRange(digs, old)
	dst.neg = false
	dst.clamp()

	if dst == &tmp {
		z.adopt(&tmp)
	}
	return nil
}
