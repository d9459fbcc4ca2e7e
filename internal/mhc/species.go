// Package mhc implements MHC nomenclature resolution: species-prefix
// lookup and inference, gene name normalization through alias expansion,
// and parsing of locus and point-mutation notation.
package mhc

import (
	"strings"

	"github.com/mhctools/mhcnames/internal/data"
)

// Species is one entry of the registry: a canonical species prefix such as
// "HLA" or "H2" together with its reference-table metadata. All derived
// state is computed during registry construction; a Species is immutable
// afterwards and safe for concurrent use.
type Species struct {
	Prefix string

	tables *data.Tables

	genes           []string
	geneSet         map[string]bool
	expandedAliases map[string]string
}

func newSpecies(prefix string, tables *data.Tables) *Species {
	s := &Species{Prefix: prefix, tables: tables}
	s.genes = s.GeneOntology().AllGenes()
	s.geneSet = make(map[string]bool, len(s.genes))
	for _, gene := range s.genes {
		s.geneSet[gene] = true
	}
	s.expandedAliases = s.expandGeneAliases()
	return s
}

// CommonName returns the common species name ("human" for HLA), or ""
// when none is recorded.
func (s *Species) CommonName() string {
	return s.tables.CommonNames[s.Prefix]
}

// GeneOntology returns the ordered class-tag groups for this species.
func (s *Species) GeneOntology() data.GeneOntology {
	return s.tables.GeneOntology[s.Prefix]
}

// GeneAliases returns the raw non-canonical -> canonical gene name table.
func (s *Species) GeneAliases() map[string]string {
	return s.tables.GeneAliases[s.Prefix]
}

// AlleleAliases returns the historical -> current allele name table.
func (s *Species) AlleleAliases() map[string]string {
	return s.tables.AlleleAliases[s.Prefix]
}

// Serotypes returns serotype name -> member alleles.
func (s *Species) Serotypes() map[string][]string {
	return s.tables.Serotypes[s.Prefix]
}

// Haplotypes returns haplotype name -> component alleles.
func (s *Species) Haplotypes() map[string][]string {
	return s.tables.Haplotypes[s.Prefix]
}

// Genes returns the flattened canonical gene list across all class tags.
func (s *Species) Genes() []string {
	return s.genes
}

// HasGene reports whether name is a canonical gene of this species.
func (s *Species) HasGene(name string) bool {
	return s.geneSet[name]
}

// expandGeneAliases builds the flat spelling-variant map used for gene
// lookup. Every canonical gene maps to itself (plus its upper-cased form),
// and every raw alias contributes four variants: literal, dash-stripped,
// upper-cased, and upper-cased dash-stripped. Alias entries overwrite
// colliding auto-derived ones.
func (s *Species) expandGeneAliases() map[string]string {
	expanded := make(map[string]string, 2*len(s.genes))
	for _, gene := range s.genes {
		expanded[gene] = gene
		if upper := strings.ToUpper(gene); upper != gene {
			expanded[upper] = gene
		}
	}
	for alias, gene := range s.GeneAliases() {
		noDash := strings.ReplaceAll(alias, "-", "")
		expanded[alias] = gene
		expanded[noDash] = gene
		expanded[strings.ToUpper(alias)] = gene
		expanded[strings.ToUpper(noDash)] = gene
	}
	return expanded
}

// FindMatchingGeneName resolves a gene token to its canonical name. An
// exact canonical gene is returned unchanged; otherwise the upper-cased
// token is looked up among the expanded alias spellings. Absence is a
// normal outcome, reported through ok.
func (s *Species) FindMatchingGeneName(gene string) (string, bool) {
	if s.geneSet[gene] {
		return gene, true
	}
	canonical, ok := s.expandedAliases[strings.ToUpper(gene)]
	return canonical, ok
}

// NormalizeGeneNameIfExists returns the canonical gene name when one
// matches and the input unchanged otherwise.
func (s *Species) NormalizeGeneNameIfExists(gene string) string {
	if canonical, ok := s.FindMatchingGeneName(gene); ok {
		return canonical
	}
	return gene
}

// MHCClassOfGene returns the class tag ("I", "Ia", ..., "IIb") of a gene,
// scanning the ontology in table order. Class II groups match on either
// the locus name or any gene within it.
func (s *Species) MHCClassOfGene(gene string) (string, bool) {
	gene = s.NormalizeGeneNameIfExists(gene)
	for _, group := range s.GeneOntology() {
		if data.IsClassITag(group.Tag) {
			for _, member := range group.Genes {
				if member == gene {
					return group.Tag, true
				}
			}
			continue
		}
		for _, locus := range group.Loci {
			if locus.Name == gene {
				return group.Tag, true
			}
			for _, member := range locus.Genes {
				if member == gene {
					return group.Tag, true
				}
			}
		}
	}
	return "", false
}
