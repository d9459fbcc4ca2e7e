package data

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MHC class tags. Class I tags carry flat gene lists; class II tags group
// genes by locus.
var (
	classITags  = map[string]bool{"I": true, "Ia": true, "Ib": true, "Ic": true, "Id": true}
	classIITags = map[string]bool{"II": true, "IIa": true, "IIb": true}
)

// IsClassITag reports whether tag names a class I grouping.
func IsClassITag(tag string) bool { return classITags[tag] }

// IsClassIITag reports whether tag names a class II grouping.
func IsClassIITag(tag string) bool { return classIITags[tag] }

// LocusGroup is one class II locus and its genes, e.g. DR -> [DRA, DRB1].
type LocusGroup struct {
	Name  string
	Genes []string
}

// ClassGroup is one entry of a species gene ontology: either a flat gene
// list (class I tags) or a list of locus groups (class II tags). Exactly
// one of Genes and Loci is set, determined by the tag.
type ClassGroup struct {
	Tag   string
	Genes []string
	Loci  []LocusGroup
}

// GeneOntology is the ordered list of MHC class groups for one species.
// Order follows the source table and determines which class tag wins when
// a gene appears under more than one.
type GeneOntology []ClassGroup

// UnmarshalYAML decodes a mapping of class tag to either a gene sequence
// or a locus mapping, preserving document order.
func (o *GeneOntology) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("gene ontology: expected mapping, got %s", nodeKind(node))
	}
	groups := make(GeneOntology, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		tag := keyNode.Value
		group := ClassGroup{Tag: tag}
		switch {
		case IsClassITag(tag):
			if err := valNode.Decode(&group.Genes); err != nil {
				return fmt.Errorf("gene ontology: class %s: %w", tag, err)
			}
		case IsClassIITag(tag):
			loci, err := decodeLocusGroups(valNode)
			if err != nil {
				return fmt.Errorf("gene ontology: class %s: %w", tag, err)
			}
			group.Loci = loci
		default:
			return fmt.Errorf("gene ontology: unknown MHC class tag %q", tag)
		}
		groups = append(groups, group)
	}
	*o = groups
	return nil
}

func decodeLocusGroups(node *yaml.Node) ([]LocusGroup, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected locus mapping, got %s", nodeKind(node))
	}
	loci := make([]LocusGroup, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var genes []string
		if err := node.Content[i+1].Decode(&genes); err != nil {
			return nil, fmt.Errorf("locus %s: %w", node.Content[i].Value, err)
		}
		loci = append(loci, LocusGroup{Name: node.Content[i].Value, Genes: genes})
	}
	return loci, nil
}

// AllGenes flattens the ontology into a single gene list, class I groups
// first in tag order, then class II loci in tag and locus order.
func (o GeneOntology) AllGenes() []string {
	var genes []string
	for _, group := range o {
		if IsClassITag(group.Tag) {
			genes = append(genes, group.Genes...)
		}
	}
	for _, group := range o {
		if IsClassIITag(group.Tag) {
			for _, locus := range group.Loci {
				genes = append(genes, locus.Genes...)
			}
		}
	}
	return genes
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return fmt.Sprintf("node kind %d", node.Kind)
	}
}
