// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package page

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Definition declares the dropdowns on a page. This is the markup
// contract: it is read once at construction and never revalidated
// afterward.
type Definition struct {
	Title     string        `yaml:"title" json:"title"`
	Dropdowns []DropdownDef `yaml:"dropdowns" json:"dropdowns"`
}

// DropdownDef declares one dropdown instance.
type DropdownDef struct {
	ID          string      `yaml:"id" json:"id"`
	Label       string      `yaml:"label" json:"label"` // Caption rendered above the trigger.
	Placeholder string      `yaml:"placeholder" json:"placeholder"`
	MaxVisible  int         `yaml:"max_visible" json:"max_visible"`
	Options     []OptionDef `yaml:"options" json:"options"`
}

// OptionDef declares one selectable entry.
type OptionDef struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// defaultPlaceholder is used when a dropdown declares none.
const defaultPlaceholder = "Select…"

// LoadDefinition reads a page definition from disk. The format is
// chosen by extension: .yaml/.yml parse as YAML, .json/.jsonc parse
// as JSON extended with // line comments, /* block comments */, and
// trailing commas.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json", ".jsonc":
		return ParseJSONC(data)
	default:
		return nil, fmt.Errorf("unsupported definition format %q (want .yaml, .yml, .json, or .jsonc)", filepath.Ext(path))
	}
}

// ParseYAML parses a YAML page definition.
func ParseYAML(data []byte) (*Definition, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	definition.normalize()
	return &definition, nil
}

// ParseJSONC strips JSONC comments and trailing commas from data,
// then unmarshals the result.
func ParseJSONC(data []byte) (*Definition, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	definition.normalize()
	return &definition, nil
}

// normalize fills the gaps a hand-written definition may leave:
// generated IDs and a default placeholder. Incomplete markup is
// best-effort, never an error: a dropdown with no options simply
// opens an empty menu.
func (definition *Definition) normalize() {
	for index := range definition.Dropdowns {
		def := &definition.Dropdowns[index]
		if def.ID == "" {
			def.ID = fmt.Sprintf("dropdown-%d", index+1)
		}
		if def.Placeholder == "" {
			def.Placeholder = defaultPlaceholder
		}
	}
}
