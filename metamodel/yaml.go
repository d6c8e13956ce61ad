package metamodel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlSchema is the document shape accepted by LoadYAML:
//
//	types:
//	  - name: Person
//	    kind: entity
//	    attributes:
//	      - name: name
//	        type: String
//	      - name: items
//	        collection: list
//	        element: Item
//	      - name: labels
//	        collection: map
//	        key: String
//	        element: String
//	        erased: true
type yamlSchema struct {
	Types []yamlType `yaml:"types"`
}

type yamlType struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"`
	Extends    string          `yaml:"extends"`
	Attributes []yamlAttribute `yaml:"attributes"`
}

type yamlAttribute struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Collection string `yaml:"collection"`
	Element    string `yaml:"element"`
	Key        string `yaml:"key"`
	Erased     bool   `yaml:"erased"`
}

// LoadYAML reads a schema document.
func LoadYAML(r io.Reader) (*Schema, error) {
	var doc yamlSchema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	s := NewSchema()
	// Declare every managed type first so attributes may reference types defined later.
	for _, yt := range doc.Types {
		if yt.Name == "" {
			return nil, fmt.Errorf("type without name")
		}
		switch strings.ToLower(yt.Kind) {
		case "", "entity":
			s.Entity(yt.Name)
		case "embeddable":
			s.Embeddable(yt.Name)
		default:
			return nil, fmt.Errorf("type %s: unknown kind %q", yt.Name, yt.Kind)
		}
	}

	for _, yt := range doc.Types {
		b := &TypeBuilder{mt: s.types[yt.Name]}
		if yt.Extends != "" {
			super, err := s.TypeByName(yt.Extends)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", yt.Name, err)
			}
			b.Extends(super)
		}
		for _, ya := range yt.Attributes {
			if err := s.addYAMLAttribute(b, ya); err != nil {
				return nil, fmt.Errorf("type %s: attribute %s: %w", yt.Name, ya.Name, err)
			}
		}
	}
	return s, nil
}

func (s *Schema) addYAMLAttribute(b *TypeBuilder, ya yamlAttribute) error {
	if ya.Name == "" {
		return fmt.Errorf("missing name")
	}
	if ya.Collection == "" {
		t, err := s.TypeByName(ya.Type)
		if err != nil {
			return err
		}
		b.Attr(ya.Name, t)
		return nil
	}

	elem, err := s.TypeByName(ya.Element)
	if err != nil {
		return fmt.Errorf("element: %w", err)
	}
	switch strings.ToLower(ya.Collection) {
	case "collection", "bag":
		b.Collection(ya.Name, elem)
	case "list":
		b.List(ya.Name, elem)
	case "set":
		b.Set(ya.Name, elem)
	case "map":
		key, err := s.TypeByName(ya.Key)
		if err != nil {
			return fmt.Errorf("key: %w", err)
		}
		b.Map(ya.Name, key, elem)
	default:
		return fmt.Errorf("unknown collection %q", ya.Collection)
	}
	if ya.Erased {
		b.Erased(ya.Name)
	}
	return nil
}
