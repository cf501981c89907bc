package calculator_test

import (
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzParse(f *testing.F) {
	f.Add("4 + 5 * 2")
	f.Add("8 - 3 - 2")
	f.Add("1  ×  2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := calculator.Parse(s)
		if err != nil {
			t.Fatalf("permissive parse of %q failed: %v", s, err)
		}
		// The postfix form is a fixed point of conversion.
		b, err := calculator.ParsePostfix(a.String())
		if err != nil {
			t.Fatalf("reparsing %q from %q failed: %v", a, s, err)
		}
		if a.String() != b.String() {
			t.Errorf("postfix of %q changed on reparse: %q became %q", s, a, b)
		}
	})
}
