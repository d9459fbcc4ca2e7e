package mhc

import (
	"fmt"
	"strings"
)

// LocusLike is implemented by Locus and MutantLocus.
type LocusLike interface {
	ToLocus() Locus
	NormalizedString(includeSpecies bool) string
	CompactString(includeSpecies bool) string
	IsMutant() bool
}

// Locus identifies a gene within a species, e.g. HLA-A. Immutable value.
type Locus struct {
	SpeciesPrefix string
	GeneName      string
}

// ToLocus projects down to a plain Locus; identity for Locus itself.
func (l Locus) ToLocus() Locus { return l }

// NormalizedString renders "<species>-<gene>", or the bare gene name when
// includeSpecies is false.
func (l Locus) NormalizedString(includeSpecies bool) string {
	if includeSpecies {
		return fmt.Sprintf("%s-%s", l.SpeciesPrefix, l.GeneName)
	}
	return l.GeneName
}

// CompactString is currently the same as the normalized representation.
func (l Locus) CompactString(includeSpecies bool) string {
	return l.NormalizedString(includeSpecies)
}

// IsMutant reports whether this locus carries mutations.
func (l Locus) IsMutant() bool { return false }

// MHCClass resolves the class tag of this locus through the registry.
func (l Locus) MHCClass(r *Registry) (string, bool) {
	sp, ok := r.FindSpecies(l.SpeciesPrefix)
	if !ok {
		return "", false
	}
	return sp.MHCClassOfGene(l.GeneName)
}

// MutantLocus is a Locus carrying one or more point mutations.
type MutantLocus struct {
	Locus
	Mutations []Mutation
}

// ToLocus drops the mutations.
func (m MutantLocus) ToLocus() Locus { return m.Locus }

// IsMutant reports whether this locus carries mutations.
func (m MutantLocus) IsMutant() bool { return true }

// NormalizedString renders "<locus> <mut>[,<mut>...] mutant".
func (m MutantLocus) NormalizedString(includeSpecies bool) string {
	muts := make([]string, len(m.Mutations))
	for i, mut := range m.Mutations {
		muts[i] = mut.NormalizedString()
	}
	return fmt.Sprintf("%s %s mutant",
		m.Locus.NormalizedString(includeSpecies), strings.Join(muts, ","))
}

// CompactString is currently the same as the normalized representation.
func (m MutantLocus) CompactString(includeSpecies bool) string {
	return m.NormalizedString(includeSpecies)
}
