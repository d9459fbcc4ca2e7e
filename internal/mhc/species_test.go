package mhc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(s string) string       { return strings.ToUpper(s) }
func stripDashes(s string) string { return strings.ReplaceAll(s, "-", "") }

func mustSpecies(t *testing.T, r *Registry, name string) *Species {
	t.Helper()
	sp, ok := r.FindSpecies(name)
	require.True(t, ok, "FindSpecies(%q)", name)
	return sp
}

func TestFindMatchingGeneName(t *testing.T) {
	r := testRegistry(t)
	hla := mustSpecies(t, r, "HLA")

	tests := []struct {
		gene   string
		want   string
		wantOK bool
	}{
		{"A", "A", true},       // canonical, returned unchanged
		{"a", "A", true},       // case-normalized
		{"DRB1", "DRB1", true}, // canonical class II
		{"DRB", "DRB1", true},  // alias
		{"drb", "DRB1", true},
		{"DRA1", "DRA", true},
		{"Z9", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.gene, func(t *testing.T) {
			got, ok := hla.FindMatchingGeneName(tt.gene)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindMatchingGeneName(%q) = %q, %v; want %q, %v",
					tt.gene, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAliasExpansionVariants(t *testing.T) {
	r := testRegistry(t)

	// Every raw alias must resolve through all four derived spellings:
	// literal, dash-stripped, upper-cased, upper-cased dash-stripped.
	for prefix, sp := range r.Species() {
		for alias, canonical := range sp.GeneAliases() {
			variants := []string{
				alias,
				stripDashes(alias),
				upper(alias),
				upper(stripDashes(alias)),
			}
			for _, v := range variants {
				got, ok := sp.FindMatchingGeneName(v)
				require.True(t, ok, "%s: alias variant %q", prefix, v)
				assert.Equal(t, canonical, got, "%s: alias variant %q", prefix, v)
			}
		}
	}
}

func TestNormalizeGeneNameIfExists(t *testing.T) {
	r := testRegistry(t)
	h2 := mustSpecies(t, r, "H2")

	assert.Equal(t, "AA", h2.NormalizeGeneNameIfExists("I-A"))
	assert.Equal(t, "AA", h2.NormalizeGeneNameIfExists("IA"))
	assert.Equal(t, "K", h2.NormalizeGeneNameIfExists("K"))
	// Unknown tokens come back unchanged.
	assert.Equal(t, "nonsense", h2.NormalizeGeneNameIfExists("nonsense"))
}

func TestMHCClassOfGene(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		species string
		gene    string
		want    string
		wantOK  bool
	}{
		{"HLA", "A", "Ia", true},
		{"HLA", "E", "Ib", true},
		{"HLA", "DRB1", "II", true},
		{"HLA", "DRB", "II", true}, // via alias
		{"HLA", "DR", "II", true},  // locus name matches directly
		{"HLA", "DQ", "II", true},
		{"HLA", "Z9", "", false},
		{"H2", "K", "Ia", true},
		{"H2", "Q1", "Ib", true},
		{"H2", "I-A", "II", true},
		// A bare locus name that is not itself a gene or alias still
		// classifies through the locus-name match.
		{"H2", "A", "II", true},
		{"H2", "E", "II", true},
		{"Susc", "1", "Ia", true},
		{"Susc", "7", "Ib", true},
	}
	for _, tt := range tests {
		t.Run(tt.species+"/"+tt.gene, func(t *testing.T) {
			sp := mustSpecies(t, r, tt.species)
			got, ok := sp.MHCClassOfGene(tt.gene)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MHCClassOfGene(%q) = %q, %v; want %q, %v",
					tt.gene, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGenesFlattened(t *testing.T) {
	r := testRegistry(t)
	hla := mustSpecies(t, r, "HLA")

	genes := hla.Genes()
	assert.Contains(t, genes, "A")
	assert.Contains(t, genes, "G")
	assert.Contains(t, genes, "DRB5")
	assert.Contains(t, genes, "DPB1")
	for _, gene := range genes {
		assert.True(t, hla.HasGene(gene), gene)
	}
}

func TestSpeciesTableAccessors(t *testing.T) {
	r := testRegistry(t)

	hla := mustSpecies(t, r, "HLA")
	assert.Contains(t, hla.Serotypes(), "A2")
	assert.Contains(t, hla.AlleleAliases(), "DRB1*14:01")

	h2 := mustSpecies(t, r, "H2")
	assert.Contains(t, h2.Haplotypes(), "b")

	// Species without a table entry get an empty map, not a failure.
	patr := mustSpecies(t, r, "Patr")
	assert.Empty(t, patr.Haplotypes())
	assert.Empty(t, patr.Serotypes())
}
