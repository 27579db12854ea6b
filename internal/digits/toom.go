// This file implements Toom-Cook 3-way squaring: the operand is split into
// three near-equal chunks, the squared polynomial is evaluated at five
// points, and the result coefficients are recovered by an exact integer
// interpolation.

package digits

// toomSqr computes z = x². The operand is treated as the degree-2 polynomial
// p(t) = a2·t² + a1·t + a0 in t = radix^B with B = used/3; p² is recovered
// from its evaluations at t ∈ {0, 2, 1, 1/2, ∞}.
//
// z is only written on full success (buffer adoption of the accumulated
// result); every failure path leaves it untouched. All scratch values are
// released on every exit path.
func toomSqr(x, z *Int) error {
	b := x.used / 3
	if b == 0 {
		return sqrComba(x, z)
	}

	var w0, w1, w2, w3, w4, a0, a1, a2, t1 Int
	scratch := [...]*Int{&w0, &w1, &w2, &w3, &w4, &a0, &a1, &a2, &t1}
	defer func() {
		for _, s := range scratch {
			s.release()
		}
	}()

	// split |x| = a2·R^2B + a1·R^B + a0; each chunk is a standalone value
	if err := a0.copyFrom(x); err != nil {
		return err
	}
	a0.neg = false
	a0.mod2d(digitBits * b)

	if err := a1.copyFrom(x); err != nil {
		return err
	}
	a1.neg = false
	a1.rshd(b)
	a1.mod2d(digitBits * b)

	if err := a2.copyFrom(x); err != nil {
		return err
	}
	a2.neg = false
	a2.rshd(2 * b)

	// w0 = a0², w4 = a2²
	if err := sqrComba(&a0, &w0); err != nil {
		return err
	}
	if err := sqrComba(&a2, &w4); err != nil {
		return err
	}

	// w1 = (a2 + 2(a1 + 2a0))²
	if err := t1.copyFrom(&a0); err != nil {
		return err
	}
	if err := t1.shl(1); err != nil {
		return err
	}
	if err := t1.Add(&t1, &a1); err != nil {
		return err
	}
	if err := t1.shl(1); err != nil {
		return err
	}
	if err := t1.Add(&t1, &a2); err != nil {
		return err
	}
	if err := sqrComba(&t1, &w1); err != nil {
		return err
	}

	// w3 = (a0 + 2(a1 + 2a2))²
	if err := t1.copyFrom(&a2); err != nil {
		return err
	}
	if err := t1.shl(1); err != nil {
		return err
	}
	if err := t1.Add(&t1, &a1); err != nil {
		return err
	}
	if err := t1.shl(1); err != nil {
		return err
	}
	if err := t1.Add(&t1, &a0); err != nil {
		return err
	}
	if err := sqrComba(&t1, &w3); err != nil {
		return err
	}

	// w2 = (a2 + a1 + a0)²
	if err := t1.Add(&a2, &a1); err != nil {
		return err
	}
	if err := t1.Add(&t1, &a0); err != nil {
		return err
	}
	if err := sqrComba(&t1, &w2); err != nil {
		return err
	}

	// Interpolate the five result coefficients, i.e. solve
	//
	//    0  0  0  0  1
	//    1  2  4  8  16
	//    1  1  1  1  1
	//    16 8  4  2  1
	//    1  0  0  0  0
	//
	// using 12 subtractions, 4 shifts, 2 exact small divisions and 1 small
	// multiplication. Every division in this sequence is exact by the
	// algebra of the evaluation points; div2Exact/div3Exact fail with an
	// InconsistencyError if that ever stops being true.

	// w1 = w1 - w4
	if err := w1.Sub(&w1, &w4); err != nil {
		return err
	}
	// w3 = w3 - w0
	if err := w3.Sub(&w3, &w0); err != nil {
		return err
	}
	// w1 = w1/2, w3 = w3/2
	if err := w1.div2Exact(); err != nil {
		return err
	}
	if err := w3.div2Exact(); err != nil {
		return err
	}
	// w2 = w2 - w0 - w4
	if err := w2.Sub(&w2, &w0); err != nil {
		return err
	}
	if err := w2.Sub(&w2, &w4); err != nil {
		return err
	}
	// w1 = w1 - w2, w3 = w3 - w2
	if err := w1.Sub(&w1, &w2); err != nil {
		return err
	}
	if err := w3.Sub(&w3, &w2); err != nil {
		return err
	}
	// w1 = w1 - 8·w0
	if err := t1.copyFrom(&w0); err != nil {
		return err
	}
	if err := t1.shl(3); err != nil {
		return err
	}
	if err := w1.Sub(&w1, &t1); err != nil {
		return err
	}
	// w3 = w3 - 8·w4
	if err := t1.copyFrom(&w4); err != nil {
		return err
	}
	if err := t1.shl(3); err != nil {
		return err
	}
	if err := w3.Sub(&w3, &t1); err != nil {
		return err
	}
	// w2 = 3·w2 - w1 - w3
	if err := w2.mulDigit(3); err != nil {
		return err
	}
	if err := w2.Sub(&w2, &w1); err != nil {
		return err
	}
	if err := w2.Sub(&w2, &w3); err != nil {
		return err
	}
	// w1 = w1 - w2, w3 = w3 - w2
	if err := w1.Sub(&w1, &w2); err != nil {
		return err
	}
	if err := w3.Sub(&w3, &w2); err != nil {
		return err
	}
	// w1 = w1/3, w3 = w3/3
	if err := w1.div3Exact(); err != nil {
		return err
	}
	if err := w3.div3Exact(); err != nil {
		return err
	}

	// recombine: shift w[n] up by n·B digits and sum everything
	if err := w1.lshd(b); err != nil {
		return err
	}
	if err := w2.lshd(2 * b); err != nil {
		return err
	}
	if err := w3.lshd(3 * b); err != nil {
		return err
	}
	if err := w4.lshd(4 * b); err != nil {
		return err
	}
	if err := w0.Add(&w0, &w1); err != nil {
		return err
	}
	if err := w2.Add(&w2, &w3); err != nil {
		return err
	}
	if err := w2.Add(&w2, &w4); err != nil {
		return err
	}
	if err := w0.Add(&w0, &w2); err != nil {
		return err
	}

	w0.neg = false
	w0.clamp()
	z.adopt(&w0)
	return nil
}
