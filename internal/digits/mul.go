// Public multiplication and squaring entry points with algorithm dispatch.

package digits

// Mul sets z = x·y. z may alias x or y.
func (z *Int) Mul(x, y *Int) error {
	return z.MulDigits(x, y, x.used+y.used)
}

// MulDigits sets z ≡ x·y mod radix^digs, computing only the low digs digits
// of the product. Requesting fewer digits than the full width skips the
// columns above digs entirely, which is what reduction algorithms rely on
// for cheap half-products. z may alias x or y.
func (z *Int) MulDigits(x, y *Int, digs int) error {
	neg := x.neg != y.neg
	if err := mulComba(x, y, z, digs); err != nil {
		return err
	}
	z.neg = neg && z.used > 0
	return nil
}

// Sqr sets z = x². Operands at or above ToomSqrThreshold digits go through
// Toom-Cook 3-way squaring, everything else through the Comba squaring
// specialization. z may alias x.
func (z *Int) Sqr(x *Int) error {
	if x.used >= ToomSqrThreshold && x.used >= MinToomSqrDigits {
		return toomSqr(x, z)
	}
	return sqrComba(x, z)
}
