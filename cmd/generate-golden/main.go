// Command generate-golden regenerates internal/words/testdata/golden.json
// from the current formatter output.
//
// Usage:
//
//	go run ./cmd/generate-golden [-out path]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/agbru/numwords/internal/words"
)

// goldenCase is one entry of the golden file. The words package reads it
// back with an identical struct; keep the two in sync.
type goldenCase struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Words     string `json:"words"`
}

// goldenInputs lists the cases in file order. Inputs use strconv spelling so
// the golden test can parse them back with strconv.ParseFloat.
var goldenInputs = []struct{ name, input string }{
	{"zero", "0"},
	{"negative zero", "-0"},
	{"fraction", "2.345"},
	{"tenth", "0.1"},
	{"negative", "-42.5"},
	{"small fixed", "0.0001"},
	{"small scientific", "1e-05"},
	{"negative small scientific", "-1.5e-07"},
	{"large scientific", "1e15"},
	{"large fixed", "123456789012345"},
	{"long mantissa fixed", "1234567890123456.7"},
	{"max float", "1.7976931348623157e308"},
	{"pi", "3.141592653589793"},
	{"one third", "0.3333333333333333"},
	{"NaN", "NaN"},
	{"positive infinity", "+Inf"},
	{"negative infinity", "-Inf"},
	{"smallest denormal", "5e-324"},
	{"negative smallest denormal", "-5e-324"},
}

func buildCases() ([]goldenCase, error) {
	cases := make([]goldenCase, 0, len(goldenInputs))
	for _, in := range goldenInputs {
		v, err := strconv.ParseFloat(in.input, 64)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", in.name, err)
		}
		cases = append(cases, goldenCase{
			Name:      in.name,
			Input:     in.input,
			Canonical: words.FormatInvariant(v),
			Words:     words.ToWords(v),
		})
	}
	return cases, nil
}

func main() {
	out := flag.String("out", "internal/words/testdata/golden.json", "golden file to write")
	flag.Parse()

	cases, err := buildCases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding golden cases: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d cases to %s\n", len(cases), *out)
}
