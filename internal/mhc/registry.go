package mhc

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mhctools/mhcnames/internal/data"
)

// exemplarSpecies maps historical prefixes that cover multiple species to
// the member species with the most complete gene annotations. The group
// key is kept as the reported prefix; only gene metadata is borrowed from
// the exemplar.
var exemplarSpecies = map[string]string{
	"DLA": "Calu",
	"ELA": "Eqca",
	"OLA": "Ovar",
	"SLA": "Susc",
	"RT1": "Rano",
}

// Registry is the species directory: one Species per canonical prefix in
// the gene ontology, plus a derived alias directory covering upper-cased
// and dash-stripped spellings and the exemplar group redirections.
// Immutable after construction.
type Registry struct {
	species map[string]*Species
	aliases map[string]*Species
}

// NewRegistry builds the full directory from the reference tables,
// computing all per-species derived state eagerly. logger may be nil.
func NewRegistry(tables *data.Tables, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		species: make(map[string]*Species, len(tables.GeneOntology)),
	}
	for prefix := range tables.GeneOntology {
		r.species[prefix] = newSpecies(prefix, tables)
	}
	r.aliases = r.buildAliases()
	logger.Debug("species registry built",
		zap.Int("species", len(r.species)),
		zap.Int("aliases", len(r.aliases)))
	return r
}

// buildAliases derives the alias directory: every canonical entry, the
// exemplar group keys, and the upper-cased and dash-stripped-upper-cased
// spelling of each canonical prefix.
func (r *Registry) buildAliases() map[string]*Species {
	aliases := make(map[string]*Species, 2*len(r.species))
	for prefix, sp := range r.species {
		aliases[prefix] = sp
	}
	for group, exemplar := range exemplarSpecies {
		if sp, ok := r.species[exemplar]; ok {
			aliases[group] = sp
		}
	}
	for prefix, sp := range r.species {
		upper := strings.ToUpper(prefix)
		if upper != prefix {
			aliases[upper] = sp
		}
		upperNoDash := strings.ReplaceAll(upper, "-", "")
		if upperNoDash != prefix && upperNoDash != upper {
			aliases[upperNoDash] = sp
		}
	}
	return aliases
}

// Species returns the canonical prefix -> Species directory.
func (r *Registry) Species() map[string]*Species {
	return r.species
}

// FindSpecies resolves a species name to its Species entry. A canonical
// prefix matches directly, preserving historical capitalization; anything
// else is normalized (upper-case, dashes stripped) and looked up among
// the aliases. Exemplar group keys resolve to their exemplar's Species.
func (r *Registry) FindSpecies(name string) (*Species, bool) {
	if sp, ok := r.species[name]; ok {
		return sp, true
	}
	sp, ok := r.aliases[normalizePrefix(name)]
	return sp, ok
}

// FindSpeciesPrefix resolves a species name to its canonical prefix
// string. The five exemplar group keys (DLA, ELA, OLA, SLA, RT1) are
// returned as themselves rather than normalized to a member species. A
// group key only resolves while its exemplar member is registered, so the
// returned prefix is always resolvable through FindSpecies.
func (r *Registry) FindSpeciesPrefix(name string) (string, bool) {
	normalized := normalizePrefix(name)
	if _, ok := exemplarSpecies[normalized]; ok {
		if _, registered := r.aliases[normalized]; registered {
			return normalized, true
		}
		return "", false
	}
	if sp, ok := r.FindSpecies(name); ok {
		return sp.Prefix, true
	}
	return "", false
}

func normalizePrefix(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), "-", "")
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry over the embedded reference
// tables, built on first use.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		tables, err := data.Load()
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry = NewRegistry(tables, nil)
	})
	return defaultRegistry, defaultErr
}
