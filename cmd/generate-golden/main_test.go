package main

import (
	"encoding/json"
	"os"
	"testing"
)

// TestBuildCases tests the generated entries for a few known inputs.
func TestBuildCases(t *testing.T) {
	cases, err := buildCases()
	if err != nil {
		t.Fatalf("buildCases: %v", err)
	}
	if len(cases) != len(goldenInputs) {
		t.Fatalf("len = %d, want %d", len(cases), len(goldenInputs))
	}

	byName := make(map[string]goldenCase, len(cases))
	for _, c := range cases {
		if _, dup := byName[c.Name]; dup {
			t.Errorf("duplicate case name %q", c.Name)
		}
		byName[c.Name] = c
	}

	tests := []struct {
		name      string
		canonical string
		words     string
	}{
		{"zero", "0", "Zero"},
		{"negative zero", "-0", "Minus zero"},
		{"fraction", "2.345", "Two point three four five"},
		{"small scientific", "1E-05", "One E zero five"},
		{"large scientific", "1E+15", "One E plus one five"},
		{"NaN", "NaN", "Not a Number"},
		{"smallest denormal", "5E-324", "Double Epsilon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := byName[tt.name]
			if !ok {
				t.Fatalf("case %q missing", tt.name)
			}
			if c.Canonical != tt.canonical {
				t.Errorf("canonical = %q, want %q", c.Canonical, tt.canonical)
			}
			if c.Words != tt.words {
				t.Errorf("words = %q, want %q", c.Words, tt.words)
			}
		})
	}
}

// TestBuildCases_MatchesCommittedFile guards against the committed golden
// file drifting from the generator's case list.
func TestBuildCases_MatchesCommittedFile(t *testing.T) {
	data, err := os.ReadFile("../../internal/words/testdata/golden.json")
	if err != nil {
		t.Skipf("golden file not readable: %v", err)
	}
	var committed []goldenCase
	if err := json.Unmarshal(data, &committed); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	cases, err := buildCases()
	if err != nil {
		t.Fatalf("buildCases: %v", err)
	}
	if len(committed) != len(cases) {
		t.Fatalf("committed file has %d cases, generator has %d", len(committed), len(cases))
	}
	for i := range cases {
		if committed[i] != cases[i] {
			t.Errorf("case %d: committed %+v, generated %+v", i, committed[i], cases[i])
		}
	}
}
