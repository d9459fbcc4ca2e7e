// Package data provides the static MHC reference tables: gene ontology,
// gene and allele aliases, serotypes, haplotypes, and common species names,
// all keyed by species prefix. The curated tables are embedded in the
// binary; LoadDir supports overriding them from a directory.
package data

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// Table file names, shared between the embedded copies and LoadDir.
const (
	geneOntologyFile  = "gene_ontology.yaml"
	geneAliasesFile   = "gene_aliases.yaml"
	alleleAliasesFile = "allele_aliases.yaml"
	serotypesFile     = "serotypes.yaml"
	haplotypesFile    = "haplotypes.yaml"
	commonNamesFile   = "common_names.yaml"
)

// Tables holds the full set of reference tables. All maps are keyed by
// species prefix and must be treated as read-only after loading.
type Tables struct {
	GeneOntology  map[string]GeneOntology
	GeneAliases   map[string]map[string]string
	AlleleAliases map[string]map[string]string
	Serotypes     map[string]map[string][]string
	Haplotypes    map[string]map[string][]string
	CommonNames   map[string]string
}

// Load parses the embedded reference tables.
func Load() (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return embeddedTables.ReadFile("tables/" + name)
	})
}

// LoadDir parses the reference tables from a directory containing the same
// YAML files as the embedded set. Every file must be present.
func LoadDir(dir string) (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(readFile func(string) ([]byte, error)) (*Tables, error) {
	t := &Tables{}
	if err := loadFile(readFile, geneOntologyFile, &t.GeneOntology); err != nil {
		return nil, err
	}
	if err := loadFile(readFile, geneAliasesFile, &t.GeneAliases); err != nil {
		return nil, err
	}
	if err := loadFile(readFile, alleleAliasesFile, &t.AlleleAliases); err != nil {
		return nil, err
	}
	if err := loadFile(readFile, serotypesFile, &t.Serotypes); err != nil {
		return nil, err
	}
	if err := loadFile(readFile, haplotypesFile, &t.Haplotypes); err != nil {
		return nil, err
	}
	if err := loadFile(readFile, commonNamesFile, &t.CommonNames); err != nil {
		return nil, err
	}
	return t, nil
}

func loadFile(readFile func(string) ([]byte, error), name string, dst any) error {
	raw, err := readFile(name)
	if err != nil {
		return fmt.Errorf("read table %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse table %s: %w", name, err)
	}
	return nil
}
