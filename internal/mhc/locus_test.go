package mhc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocusNormalizedString(t *testing.T) {
	l := Locus{SpeciesPrefix: "HLA", GeneName: "A"}
	assert.Equal(t, "HLA-A", l.NormalizedString(true))
	assert.Equal(t, "A", l.NormalizedString(false))
	assert.Equal(t, "HLA-A", l.CompactString(true))
	assert.False(t, l.IsMutant())
	assert.Equal(t, l, l.ToLocus())
}

func TestLocusMHCClass(t *testing.T) {
	r := testRegistry(t)

	class, ok := Locus{SpeciesPrefix: "HLA", GeneName: "A"}.MHCClass(r)
	require.True(t, ok)
	assert.Equal(t, "Ia", class)

	class, ok = Locus{SpeciesPrefix: "H2", GeneName: "AB"}.MHCClass(r)
	require.True(t, ok)
	assert.Equal(t, "II", class)

	// Exemplar group prefix resolves class through the exemplar's ontology.
	class, ok = Locus{SpeciesPrefix: "RT1", GeneName: "A1"}.MHCClass(r)
	require.True(t, ok)
	assert.Equal(t, "Ia", class)

	_, ok = Locus{SpeciesPrefix: "HLA", GeneName: "Z9"}.MHCClass(r)
	assert.False(t, ok)

	_, ok = Locus{SpeciesPrefix: "XYZ", GeneName: "A"}.MHCClass(r)
	assert.False(t, ok)
}

func TestMutantLocus(t *testing.T) {
	m := MutantLocus{
		Locus:     Locus{SpeciesPrefix: "HLA", GeneName: "B"},
		Mutations: []Mutation{{Pos: 80, AAOriginal: 'T', AAMutant: 'M'}},
	}
	assert.True(t, m.IsMutant())
	assert.Equal(t, "HLA-B T80M mutant", m.NormalizedString(true))
	assert.Equal(t, "B T80M mutant", m.NormalizedString(false))
	assert.Equal(t, Locus{SpeciesPrefix: "HLA", GeneName: "B"}, m.ToLocus())

	m.Mutations = append(m.Mutations, Mutation{Pos: 116, AAOriginal: 'Y', AAMutant: 'S'})
	assert.Equal(t, "HLA-B T80M,Y116S mutant", m.NormalizedString(true))
}
