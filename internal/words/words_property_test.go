package words

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// anyFloat64 covers every bit pattern, so NaN payloads, both infinities,
// signed zero and denormals all show up alongside ordinary values.
func anyFloat64() gopter.Gen {
	return gen.UInt64().Map(func(bits uint64) float64 {
		return math.Float64frombits(bits)
	})
}

// wellFormed reports whether s is non-empty, single-spaced, has no
// surrounding whitespace, and has a first word made of one uppercase
// letter followed by lowercase letters.
func wellFormed(s string) bool {
	if s == "" || strings.TrimSpace(s) != s || strings.Contains(s, "  ") {
		return false
	}
	first, _, _ := strings.Cut(s, " ")
	if !unicode.IsUpper(rune(first[0])) {
		return false
	}
	for _, r := range first[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// TestToWords_OutputShape_PropertyBased verifies that every float64 maps to
// a non-empty, single-spaced string with a capitalized first word.
func TestToWords_OutputShape_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("ToWords output is well formed", prop.ForAll(
		func(v float64) bool {
			return wellFormed(ToWords(v))
		},
		anyFloat64(),
	))

	properties.Property("exponent-sign formatter output is well formed", prop.ForAll(
		func(v float64) bool {
			return wellFormed(NewFormatter(WithExponentSign()).Words(v))
		},
		anyFloat64(),
	))

	properties.TestingRun(t)
}

// TestToWords_WordPerCharacter_PropertyBased verifies the digit expansion
// emits exactly one word per word-bearing character of the canonical form,
// plus "Minus" when the sign bit is set.
func TestToWords_WordPerCharacter_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("word count matches canonical form", prop.ForAll(
		func(v float64) bool {
			if math.IsNaN(v) || math.IsInf(v, 0) || v == math.SmallestNonzeroFloat64 {
				return true
			}
			canonical := FormatInvariant(v)
			want := 0
			for i := 0; i < len(canonical); i++ {
				if _, ok := charWord(canonical[i]); ok {
					want++
				}
			}
			if math.Signbit(v) {
				want++
			}
			return len(strings.Fields(ToWords(v))) == want
		},
		anyFloat64(),
	))

	properties.Property("Minus prefix iff sign bit set", prop.ForAll(
		func(v float64) bool {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
			return strings.HasPrefix(ToWords(v), "Minus") == math.Signbit(v)
		},
		anyFloat64(),
	))

	properties.TestingRun(t)
}

// TestFormatInvariant_RoundTrip_PropertyBased verifies that the canonical
// form of any finite value parses back to the same value.
func TestFormatInvariant_RoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("canonical form round-trips", prop.ForAll(
		func(v float64) bool {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
			got, err := strconv.ParseFloat(FormatInvariant(v), 64)
			return err == nil && got == v && math.Signbit(got) == math.Signbit(v)
		},
		anyFloat64(),
	))

	properties.Property("canonical form uses only invariant characters", prop.ForAll(
		func(v float64) bool {
			return !strings.ContainsAny(FormatInvariant(v), ", e_")
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}

// TestToWordsBatch_Elementwise_PropertyBased verifies the batch result is
// the element-wise single conversion, in order.
func TestToWordsBatch_Elementwise_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("batch equals element-wise ToWords", prop.ForAll(
		func(values []float64) bool {
			if len(values) == 0 {
				_, err := ToWordsBatch(values)
				return err != nil
			}
			got, err := ToWordsBatch(values)
			if err != nil || len(got) != len(values) {
				return false
			}
			for i, v := range values {
				if got[i] != ToWords(v) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64()),
	))

	properties.TestingRun(t)
}
