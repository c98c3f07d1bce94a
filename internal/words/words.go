package words

import (
	"math"
	"strings"

	apperrors "github.com/agbru/numwords/internal/errors"
)

var (
	// ErrMissingInput is returned by batch conversion when the source slice is nil.
	ErrMissingInput error = apperrors.ArgumentError{Param: "source", Message: "cannot be nil"}

	// ErrEmptyInput is returned by batch conversion when the source slice has no elements.
	ErrEmptyInput error = apperrors.ArgumentError{Param: "source", Message: "cannot be empty"}
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithExponentSign makes the formatter spell a negative exponent's sign as
// "minus". By default that character produces no word.
func WithExponentSign() Option {
	return func(f *Formatter) { f.exponentSign = true }
}

// Formatter converts numbers to words. The zero value behaves exactly like
// ToWords and ToWordsBatch. A Formatter is immutable once built and may be
// shared between goroutines.
type Formatter struct {
	exponentSign bool
}

// NewFormatter builds a Formatter from the given options.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ExponentSign reports whether the formatter spells negative exponent signs.
func (f *Formatter) ExponentSign() bool {
	return f.exponentSign
}

var defaultFormatter = &Formatter{}

// ToWords returns the English word form of number, for example
// "Two point three four five" for 2.345 and "Minus zero" for -0.0.
//
// Parameters:
//   - number: Any float64, including NaN, the infinities and denormals.
//
// Returns:
//   - string: A non-empty string whose first character is uppercase.
func ToWords(number float64) string {
	return defaultFormatter.Words(number)
}

// ToWordsBatch converts each element of values with ToWords, preserving
// order.
//
// Parameters:
//   - values: The numbers to convert. Must be non-nil and non-empty.
//
// Returns:
//   - []string: A new slice with one entry per input value.
//   - error: ErrMissingInput for a nil slice, ErrEmptyInput for an empty one.
func ToWordsBatch(values []float64) ([]string, error) {
	return defaultFormatter.Batch(values)
}

// Words returns the English word form of number.
func (f *Formatter) Words(number float64) string {
	switch {
	case math.IsNaN(number):
		return wordNaN
	case math.IsInf(number, -1):
		return wordNegativeInf
	case math.IsInf(number, 1):
		return wordPositiveInf
	case number == math.SmallestNonzeroFloat64:
		return wordEpsilon
	}

	canonical := FormatInvariant(number)

	var sb strings.Builder
	sb.Grow(len(canonical) * 6)
	if math.Signbit(number) {
		sb.WriteString(wordMinus)
	}

	for i := 0; i < len(canonical); i++ {
		c := canonical[i]
		if w, ok := charWord(c); ok {
			sb.WriteByte(' ')
			sb.WriteString(w)
			continue
		}
		if f.exponentSign && c == '-' && i > 0 && canonical[i-1] == 'E' {
			sb.WriteByte(' ')
			sb.WriteString(wordExponentSign)
		}
	}

	return capitalizeFirst(strings.TrimSpace(sb.String()))
}

// Batch converts each element of values, preserving order. It fails before
// converting anything when values is nil or empty.
func (f *Formatter) Batch(values []float64) ([]string, error) {
	if values == nil {
		return nil, ErrMissingInput
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = f.Words(v)
	}
	return out, nil
}

// capitalizeFirst uppercases the leading ASCII letter of s. Every word this
// package emits is ASCII.
func capitalizeFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
