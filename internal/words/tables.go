package words

// Special-case results, checked in this order before any digit expansion.
const (
	wordNaN         = "Not a Number"
	wordNegativeInf = "Negative Infinity"
	wordPositiveInf = "Positive Infinity"
	wordEpsilon     = "Double Epsilon"
)

const (
	wordMinus        = "Minus"
	wordPoint        = "point"
	wordPlus         = "plus"
	wordExponent     = "E"
	wordExponentSign = "minus"
)

var digitWords = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// charWord returns the word for one character of the canonical form.
// The second result is false for characters that produce no word; '-' is
// one of them.
func charWord(c byte) (string, bool) {
	switch {
	case c >= '0' && c <= '9':
		return digitWords[c-'0'], true
	case c == '.':
		return wordPoint, true
	case c == '+':
		return wordPlus, true
	case c == 'E':
		return wordExponent, true
	}
	return "", false
}
