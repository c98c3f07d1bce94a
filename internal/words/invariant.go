package words

import (
	"math"
	"strconv"
	"strings"
)

const (
	// minFixedDigits is the significant-digit floor below which a
	// magnitude still prints in fixed notation. A value whose decimal
	// scale exceeds max(len(digits), minFixedDigits) switches to
	// scientific notation.
	minFixedDigits = 15

	// minFixedScale is the smallest decimal scale printed in fixed
	// notation: 0.0001 (scale -3) is fixed, 0.00001 (scale -4) is not.
	minFixedScale = -3

	// minExponentDigits pads the exponent to at least two digits (E+05).
	minExponentDigits = 2
)

// FormatInvariant renders v in its canonical culture-invariant form: the
// shortest digit string that round-trips, '.' as decimal point, a leading
// '-' whenever the sign bit is set, and scientific notation ("1E+15",
// "1E-05") for very large or very small magnitudes.
//
// Non-finite values render as "NaN", "Infinity" and "-Infinity".
func FormatInvariant(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	digits, scale := shortestDigits(math.Abs(v))

	var sb strings.Builder
	sb.Grow(len(digits) + 8)
	if math.Signbit(v) {
		sb.WriteByte('-')
	}

	if scale > max(len(digits), minFixedDigits) || scale < minFixedScale {
		appendScientific(&sb, digits, scale)
	} else {
		appendFixed(&sb, digits, scale)
	}
	return sb.String()
}

// shortestDigits returns the shortest round-trip significant digits of a
// non-negative finite value and its decimal scale, i.e. the position of the
// decimal point relative to the first digit (123.4 -> "1234", 3).
// Zero yields ("0", 1).
func shortestDigits(abs float64) (string, int) {
	s := strconv.FormatFloat(abs, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	return strings.Replace(mantissa, ".", "", 1), e + 1
}

func appendFixed(sb *strings.Builder, digits string, scale int) {
	switch {
	case scale <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -scale))
		sb.WriteString(digits)
	case scale >= len(digits):
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", scale-len(digits)))
	default:
		sb.WriteString(digits[:scale])
		sb.WriteByte('.')
		sb.WriteString(digits[scale:])
	}
}

func appendScientific(sb *strings.Builder, digits string, scale int) {
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('E')

	exp := scale - 1
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	e := strconv.Itoa(exp)
	if pad := minExponentDigits - len(e); pad > 0 {
		sb.WriteString(strings.Repeat("0", pad))
	}
	sb.WriteString(e)
}
