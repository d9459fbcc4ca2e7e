package mhc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MalformedNameError reports input that violates a closed-form grammar.
// Unlike lookup misses, which are ordinary absent results, a grammar
// violation is a hard contract failure.
type MalformedNameError struct {
	What  string
	Input string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.What, e.Input)
}

// Mutation is a point mutation in <original><position><mutant> notation,
// e.g. N29L. Position is 1-based.
type Mutation struct {
	Pos        int
	AAOriginal byte
	AAMutant   byte
}

// Positions are allowed to be multi-digit; real mutant alleles routinely
// sit past residue 9.
var mutationRegex = regexp.MustCompile(`^([A-Z])([0-9]+)([A-Z])$`)

// ParseMutation parses point-mutation notation, case-insensitively. The
// grammar is fixed: one amino-acid letter, a positive position, one
// amino-acid letter. Anything else fails with a MalformedNameError.
func ParseMutation(text string) (Mutation, error) {
	m := mutationRegex.FindStringSubmatch(strings.ToUpper(text))
	if m == nil {
		return Mutation{}, &MalformedNameError{What: "mutation", Input: text}
	}
	pos, err := strconv.Atoi(m[2])
	if err != nil || pos < 1 {
		return Mutation{}, &MalformedNameError{What: "mutation", Input: text}
	}
	return Mutation{Pos: pos, AAOriginal: m[1][0], AAMutant: m[3][0]}, nil
}

// NormalizedString renders the mutation back into its canonical notation.
func (m Mutation) NormalizedString() string {
	return fmt.Sprintf("%c%d%c", m.AAOriginal, m.Pos, m.AAMutant)
}
