// Number-theoretic symbol functions. These are thin wrappers around the
// engine's value conversions: the Kronecker symbol needs a general modulus,
// which is deliberately outside this engine's scope, so the odd-part
// reduction is delegated to math/big.

package digits

import (
	"math/big"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// kronecker2Table maps a mod 8 to the Kronecker symbol (a|2).
var kronecker2Table = [8]int{0, 1, 0, -1, 0, -1, 0, 1}

// Kronecker computes the Kronecker symbol (a|n), the extension of the Jacobi
// symbol to arbitrary n.
func Kronecker(a, n *Int) int {
	return kroneckerBig(a.Big(), n.Big())
}

func kroneckerBig(a, n *big.Int) int {
	one := big.NewInt(1)
	if n.Sign() == 0 {
		// (a|0) is 1 for a = ±1 and 0 otherwise
		if a.CmpAbs(one) == 0 {
			return 1
		}
		return 0
	}

	result := 1
	if n.Sign() < 0 && a.Sign() < 0 {
		result = -result
	}

	m := new(big.Int).Abs(n)
	if e := m.TrailingZeroBits(); e > 0 {
		if a.Bit(0) == 0 {
			// even a against even n
			return 0
		}
		// (a|2)^e: only the parity of e matters
		if e&1 == 1 {
			r := new(big.Int).Mod(a, big.NewInt(8))
			if kronecker2Table[r.Int64()] == -1 {
				result = -result
			}
		}
		m.Rsh(m, e)
	}

	if m.Cmp(one) == 0 {
		return result
	}
	return result * big.Jacobi(a, m)
}

// Jacobi computes the Jacobi symbol (a|n), equal to the Legendre symbol when
// n is prime. Kept for legacy callers with the historical argument
// constraints (a >= 0, n > 0); it only validates and forwards to Kronecker.
func Jacobi(a, n *Int) (int, error) {
	if a.Sign() < 0 {
		return 0, apperrors.ValidationError{Field: "a", Message: "must be non-negative"}
	}
	if n.Sign() <= 0 {
		return 0, apperrors.ValidationError{Field: "n", Message: "must be positive"}
	}
	return Kronecker(a, n), nil
}
