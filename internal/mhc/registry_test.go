package mhc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhctools/mhcnames/internal/data"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	tables, err := data.Load()
	require.NoError(t, err)
	return NewRegistry(tables, nil)
}

func TestFindSpecies(t *testing.T) {
	r := testRegistry(t)

	sp, ok := r.FindSpecies("HLA")
	require.True(t, ok)
	assert.Equal(t, "HLA", sp.Prefix)
	assert.Equal(t, "human", sp.CommonName())

	_, ok = r.FindSpecies("XYZ")
	assert.False(t, ok)
}

func TestFindSpeciesCaseAndDashInsensitive(t *testing.T) {
	r := testRegistry(t)

	// Every registered prefix must resolve identically through its
	// upper-cased and dash-stripped spellings.
	for prefix, sp := range r.Species() {
		upper := strings.ToUpper(prefix)
		upperNoDash := strings.ReplaceAll(upper, "-", "")
		for _, name := range []string{prefix, upper, upperNoDash} {
			got, ok := r.FindSpecies(name)
			require.True(t, ok, "FindSpecies(%q)", name)
			assert.Same(t, sp, got, "FindSpecies(%q)", name)
		}
	}
}

func TestFindSpeciesDashedHistoricalSpelling(t *testing.T) {
	r := testRegistry(t)

	sp, ok := r.FindSpecies("H-2")
	require.True(t, ok)
	assert.Equal(t, "H2", sp.Prefix)
	assert.Equal(t, "mouse", sp.CommonName())

	sp, ok = r.FindSpecies("bola")
	require.True(t, ok)
	assert.Equal(t, "BoLA", sp.Prefix)
}

func TestFindSpeciesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"HLA", "HLA", true},
		{"hla", "HLA", true},
		{"H-2", "H2", true},
		{"Eqca", "Eqca", true},
		{"eqca", "Eqca", true},
		{"unknown", "", false},
	}
	r := testRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FindSpeciesPrefix(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindSpeciesPrefix(%q) = %q, %v; want %q, %v",
					tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExemplarGroupKeepsIdentity(t *testing.T) {
	r := testRegistry(t)

	// The group key itself is the reported prefix...
	for _, group := range []string{"DLA", "ELA", "OLA", "SLA", "RT1"} {
		prefix, ok := r.FindSpeciesPrefix(group)
		require.True(t, ok, group)
		assert.Equal(t, group, prefix)

		prefix, ok = r.FindSpeciesPrefix(strings.ToLower(group))
		require.True(t, ok, group)
		assert.Equal(t, group, prefix)
	}

	// ...while Species metadata is borrowed from the exemplar.
	sp, ok := r.FindSpecies("ELA")
	require.True(t, ok)
	assert.Equal(t, "Eqca", sp.Prefix)
	assert.Equal(t, "horse", sp.CommonName())

	sp, ok = r.FindSpecies("RT1")
	require.True(t, ok)
	assert.Equal(t, "Rano", sp.Prefix)
}

func TestExemplarGroupWithoutMemberSpecies(t *testing.T) {
	// Override tables may omit an exemplar member species. The group key
	// must then be unresolvable rather than dangling.
	tables := &data.Tables{
		GeneOntology: map[string]data.GeneOntology{
			"HLA": {{Tag: "Ia", Genes: []string{"A", "B", "C"}}},
		},
		CommonNames: map[string]string{"HLA": "human"},
	}
	r := NewRegistry(tables, nil)

	for _, group := range []string{"DLA", "ELA", "OLA", "SLA", "RT1"} {
		_, ok := r.FindSpeciesPrefix(group)
		assert.False(t, ok, group)
		_, ok = r.FindSpecies(group)
		assert.False(t, ok, group)
	}

	rn, ok := r.ResolveName("DLA-A")
	assert.False(t, ok)
	assert.Nil(t, rn)

	// Registered species keep resolving normally.
	prefix, ok := r.FindSpeciesPrefix("hla")
	require.True(t, ok)
	assert.Equal(t, "HLA", prefix)
}

func TestDefaultRegistry(t *testing.T) {
	r1, err := Default()
	require.NoError(t, err)
	r2, err := Default()
	require.NoError(t, err)
	assert.Same(t, r1, r2)
}
