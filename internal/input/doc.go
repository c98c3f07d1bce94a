// Package input turns user-supplied text into float64 values for conversion.
// It accepts everything strconv.ParseFloat accepts plus the spellings the
// canonical form itself produces (NaN, Infinity, -Infinity), so any
// canonical string printed by numwords can be fed back in.
package input
