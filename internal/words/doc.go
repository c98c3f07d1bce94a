// Package words spells a float64 out in English, one word per character of
// its canonical invariant textual form.
//
// The conversion is total: NaN, the infinities, signed zero and the
// smallest denormal all produce a defined, non-empty result. The functions
// in this package hold no state and are safe for concurrent use.
//
// Known quirk: the sign of a negative exponent is not spelled out, so a
// value rendered as "1E-05" reads "One E zero five". Use WithExponentSign
// to opt into "One E minus zero five".
package words
