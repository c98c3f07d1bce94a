package input

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/numwords/internal/errors"
)

// keywords maps case-folded special spellings to their values.
var keywords = map[string]float64{
	"nan":       math.NaN(),
	"infinity":  math.Inf(1),
	"+infinity": math.Inf(1),
	"-infinity": math.Inf(-1),
	"∞":         math.Inf(1),
	"+∞":        math.Inf(1),
	"-∞":        math.Inf(-1),
	"epsilon":   math.SmallestNonzeroFloat64,
}

// ParseNumber parses a single token.
//
// Parameters:
//   - token: A decimal or scientific literal, or one of the keywords NaN,
//     Infinity, -Infinity, ∞ and epsilon (case-insensitive).
//
// Returns:
//   - float64: The parsed value.
//   - error: An apperrors.InputError when the token is not a number.
func ParseNumber(token string) (float64, error) {
	t := strings.TrimSpace(token)
	if v, ok := keywords[strings.ToLower(t)]; ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range literals still parse to ±Inf or ±0; keep them.
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, apperrors.InputError{Token: token, Cause: err}
	}
	return v, nil
}

// IsNumber reports whether token parses with ParseNumber.
func IsNumber(token string) bool {
	_, err := ParseNumber(token)
	return err == nil
}

// ParseAll parses every token, stopping at the first failure.
func ParseAll(tokens []string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := ParseNumber(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadNumbers reads numbers separated by whitespace or commas. A '#' starts
// a comment that runs to the end of the line. The returned InputError
// carries the 1-based line of the first token that fails to parse.
func ReadNumbers(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var values []float64
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			v, err := ParseNumber(tok)
			if err != nil {
				inputErr := err.(apperrors.InputError)
				inputErr.Line = line
				return nil, inputErr
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading numbers")
	}
	if values == nil {
		values = []float64{}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
