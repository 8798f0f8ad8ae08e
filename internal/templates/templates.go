// Package templates provides the starter program shown for each structure
// kind. The programs are embedded YAML so they ship with the binary.
package templates

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

//go:embed templates.yaml
var embedded []byte

// ErrNotFound is returned for a kind without a template
var ErrNotFound = errors.New("template not found")

// Template is a starter program for one kind
type Template struct {
	Kind        types.Kind `yaml:"kind" json:"kind"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Source      string     `yaml:"source" json:"source"`
}

type file struct {
	Templates []Template `yaml:"templates"`
}

// Set holds templates in display order
type Set struct {
	list   []Template
	byKind map[types.Kind]Template
}

// Load parses the embedded templates
func Load() (*Set, error) {
	return Parse(embedded)
}

// Parse decodes a template document. Every kind must appear exactly once.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	set := &Set{
		list:   make([]Template, 0, len(f.Templates)),
		byKind: make(map[types.Kind]Template, len(f.Templates)),
	}
	for _, t := range f.Templates {
		if !t.Kind.Valid() {
			return nil, fmt.Errorf("template has unknown kind %q", t.Kind)
		}
		if _, dup := set.byKind[t.Kind]; dup {
			return nil, fmt.Errorf("duplicate template for kind %q", t.Kind)
		}
		if t.Source == "" {
			return nil, fmt.Errorf("template for kind %q has no source", t.Kind)
		}
		if t.Title == "" {
			t.Title = t.Kind.DisplayName()
		}
		set.list = append(set.list, t)
		set.byKind[t.Kind] = t
	}

	for _, k := range types.Kinds {
		if _, ok := set.byKind[k]; !ok {
			return nil, fmt.Errorf("missing template for kind %q", k)
		}
	}
	return set, nil
}

// All returns every template in display order
func (s *Set) All() []Template {
	out := make([]Template, len(s.list))
	copy(out, s.list)
	return out
}

// Get returns the template for kind
func (s *Set) Get(kind types.Kind) (Template, error) {
	t, ok := s.byKind[kind]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrNotFound, kind)
	}
	return t, nil
}
