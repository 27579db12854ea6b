package cli

import (
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

func TestParseOperand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"decimal", "12345", "12345"},
		{"negative decimal", "-987", "-987"},
		{"hex", "0xDEADBEEF", "3735928559"},
		{"negative hex", "-0xff", "-255"},
		{"underscores", "1_000_000", "1000000"},
		{"whitespace", "  42  ", "42"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, err := ParseOperand("a", tt.text)
			if err != nil {
				t.Fatalf("ParseOperand(%q) returned error: %v", tt.text, err)
			}
			want, _ := new(big.Int).SetString(tt.want, 10)
			if x.Big().Cmp(want) != 0 {
				t.Errorf("ParseOperand(%q) = %s, want %s", tt.text, x.Big(), want)
			}
		})
	}
}

func TestParseOperandRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "  ", "12x4", "0x", "ten", "1.5"} {
		_, err := ParseOperand("b", text)
		if err == nil {
			t.Errorf("ParseOperand(%q) succeeded, want error", text)
			continue
		}
		var vErr apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("ParseOperand(%q) error = %T, want ValidationError", text, err)
			continue
		}
		if vErr.Field != "b" {
			t.Errorf("ParseOperand(%q) Field = %q, want %q", text, vErr.Field, "b")
		}
	}
}
