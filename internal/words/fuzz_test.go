package words

import (
	"math"
	"strings"
	"testing"
)

// FuzzToWords checks that the conversion is total and well formed for
// arbitrary bit patterns, and that only NaN maps to "Not a Number".
func FuzzToWords(f *testing.F) {
	for _, v := range []float64{0, 1, -1, 2.345, 0.1, 1e-5, 1e15, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		f.Add(math.Float64bits(v))
	}
	f.Add(math.Float64bits(math.Copysign(0, -1)))
	f.Add(math.Float64bits(math.Inf(1)))
	f.Add(math.Float64bits(math.NaN()))

	f.Fuzz(func(t *testing.T, bits uint64) {
		v := math.Float64frombits(bits)
		got := ToWords(v)

		if !wellFormed(got) {
			t.Fatalf("ToWords(%v) = %q is not well formed", v, got)
		}
		if (got == "Not a Number") != math.IsNaN(v) {
			t.Errorf("ToWords(%v) = %q, NaN mapping mismatch", v, got)
		}
		if strings.Contains(got, "minus") {
			t.Errorf("ToWords(%v) = %q, default formatter must not spell exponent signs", v, got)
		}
	})
}
