// Operand parsing for the command line.

package cli

import (
	"math/big"
	"strings"

	"github.com/agbru/mpcalc/internal/digits"
	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// ParseOperand converts a command-line operand into an engine integer.
// Accepted forms are decimal ("-123", "42") and hexadecimal with a 0x
// prefix ("0xDEADBEEF", "-0xff"). Underscores are allowed as visual
// separators, as in Go literals.
//
// Parameters:
//   - field: The argument name, used in validation errors.
//   - text: The operand as written by the user.
//
// Returns:
//   - *digits.Int: The parsed value.
//   - error: A ValidationError when the text is not a valid integer.
func ParseOperand(field, text string) (*digits.Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, apperrors.ValidationError{Field: field, Message: "empty operand"}
	}

	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, apperrors.ValidationError{
			Field:   field,
			Message: "not a valid integer (decimal or 0x-prefixed hex)",
		}
	}

	var x digits.Int
	if err := x.SetBig(v); err != nil {
		return nil, apperrors.WrapError(err, "operand %s", field)
	}
	return &x, nil
}
