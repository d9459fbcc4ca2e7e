// Package output renders resolved MHC names as tab-delimited or JSON
// records.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/mhctools/mhcnames/internal/mhc"
)

// Record is an ordered list of field/value pairs. Order follows insertion
// and is preserved in every output format.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set appends a field, or overwrites its value if already present.
func (r *Record) Set(key, value string) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string { return r.keys }

// Get returns the value for key, or "" when absent.
func (r *Record) Get(key string) string { return r.values[key] }

// MarshalJSON renders the record as a JSON object with fields in
// insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SpeciesRecord builds the record view of a resolved species: the reported
// prefix (which may be a historical group key) and the common name of the
// species supplying its metadata.
func SpeciesRecord(prefix string, sp *mhc.Species) *Record {
	return NewRecord().
		Set("species_prefix", prefix).
		Set("species_name", sp.CommonName())
}

// LocusRecord builds the record view of a locus, resolving its MHC class
// through the registry.
func LocusRecord(r *mhc.Registry, locus mhc.LocusLike) *Record {
	base := locus.ToLocus()
	class, _ := base.MHCClass(r)
	return NewRecord().
		Set("locus", locus.NormalizedString(true)).
		Set("species_prefix", base.SpeciesPrefix).
		Set("gene_name", base.GeneName).
		Set("is_mutant", boolField(locus.IsMutant())).
		Set("mhc_class", class)
}

// ResolvedNameRecord builds the record view of a full compound-name
// resolution.
func ResolvedNameRecord(r *mhc.Registry, name string, rn *mhc.ResolvedName) *Record {
	rec := NewRecord().
		Set("name", name).
		Set("species_prefix", rn.Prefix).
		Set("species_name", rn.Species.CommonName()).
		Set("gene_name", rn.Gene).
		Set("allele", rn.Allele)
	mutation := ""
	if rn.Mutation != nil {
		mutation = rn.Mutation.NormalizedString()
	}
	rec.Set("mutation", mutation)
	class := ""
	if rn.Gene != "" {
		class, _ = rn.Species.MHCClassOfGene(rn.Gene)
	}
	rec.Set("mhc_class", class)
	if locus := rn.Locus(); locus != nil {
		rec.Set("locus", locus.NormalizedString(true))
	} else {
		rec.Set("locus", "")
	}
	return rec
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
