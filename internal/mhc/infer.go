package mhc

import "strings"

// InferSpeciesPrefixSubstring finds a species prefix embedded at the start
// of a compound identifier. Prefixes vary in length (2-4 characters), may
// carry internal dashes ("H-2"), and are often fused directly to the gene
// and allele ("H2Kk", "HLA-A0201"), so lookup alone is not enough.
//
// Candidate substrings are tried in a fixed order: the whole input; then,
// when the input contains dashes, the part before the first dash and the
// first two dash-separated parts joined. Within each candidate, leading
// slices of length 2, 3, and 4 are tried in that order. The first slice
// that resolves to a species wins. This precedence is load-bearing for
// historical identifiers and must not be reordered.
//
// Returns the canonical prefix and the original substring that matched it.
func (r *Registry) InferSpeciesPrefixSubstring(name string) (prefix, matched string, ok bool) {
	candidates := []string{name}
	if strings.Contains(name, "-") {
		parts := strings.Split(name, "-")
		candidates = append(candidates, parts[0], parts[0]+"-"+parts[1])
	}
	for _, candidate := range candidates {
		for _, n := range []int{2, 3, 4} {
			leading := candidate
			if n < len(candidate) {
				leading = candidate[:n]
			}
			if prefix, ok := r.FindSpeciesPrefix(leading); ok {
				return prefix, leading, true
			}
		}
	}
	return "", "", false
}

// ResolvedName is the structured result of resolving a compound
// identifier. Gene is empty when no canonical gene matched the remainder;
// Allele holds whatever followed the gene (allele, serotype, or haplotype
// code). Mutation is set when the trailing token parses as a point
// mutation.
type ResolvedName struct {
	Species  *Species
	Prefix   string // reported prefix, may be a group key such as "ELA"
	Gene     string
	Allele   string
	Mutation *Mutation
}

// Locus projects the resolved name down to its Locus, or a MutantLocus
// when a mutation was parsed. Returns nil when no gene was resolved.
func (rn *ResolvedName) Locus() LocusLike {
	if rn.Gene == "" {
		return nil
	}
	locus := Locus{SpeciesPrefix: rn.Prefix, GeneName: rn.Gene}
	if rn.Mutation != nil {
		return MutantLocus{Locus: locus, Mutations: []Mutation{*rn.Mutation}}
	}
	return locus
}

// ResolveName runs the full heuristic pipeline over a compound
// identifier: infer the species prefix, resolve the longest leading gene
// token of the remainder, and classify what is left as a mutation or an
// allele code. Absence of a species is reported through ok; a recognized
// species with an unresolvable remainder still succeeds, with the
// remainder preserved in Allele.
func (r *Registry) ResolveName(name string) (*ResolvedName, bool) {
	prefix, matched, ok := r.InferSpeciesPrefixSubstring(name)
	if !ok {
		return nil, false
	}
	sp, ok := r.FindSpecies(prefix)
	if !ok {
		return nil, false
	}
	rn := &ResolvedName{Species: sp, Prefix: prefix}

	rest := trimSeparators(name[len(matched):])
	if rest == "" {
		return rn, true
	}

	gene, tail, found := matchLeadingGene(sp, rest)
	if !found {
		rn.Allele = rest
		return rn, true
	}
	rn.Gene = gene
	tail = trimSeparators(tail)
	if tail == "" {
		return rn, true
	}
	if mut, err := ParseMutation(tail); err == nil {
		rn.Mutation = &mut
		return rn, true
	}
	rn.Allele = tail
	return rn, true
}

// matchLeadingGene finds the longest prefix of rest that resolves to a
// canonical gene of sp. Longest-first so "DRB10401" matches DRB1 rather
// than a shorter gene that happens to share leading characters.
func matchLeadingGene(sp *Species, rest string) (gene, tail string, ok bool) {
	for n := len(rest); n > 0; n-- {
		if canonical, found := sp.FindMatchingGeneName(rest[:n]); found {
			return canonical, rest[n:], true
		}
	}
	return "", rest, false
}

func trimSeparators(s string) string {
	return strings.TrimLeft(s, "-*: ")
}
