// Package tile provides the read-only catalog of terrain types available
// to the editor's tile picker. The catalog ships embedded and can be
// overridden by a YAML file on disk, which is watched for live reload.
package tile

import (
	"embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultFS embed.FS

// Type describes one terrain type in the catalog.
type Type struct {
	Name   string   `yaml:"name"`
	Symbol string   `yaml:"symbol"`
	Color  HexColor `yaml:"color"`
}

type catalogFile struct {
	Tiles []Type `yaml:"tiles"`
}

// Registry is an ordered, read-only view of the available tile types.
type Registry struct {
	types []Type
}

// Default loads the embedded catalog.
func Default() (*Registry, error) {
	data, err := defaultFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("tile: read embedded catalog: %w", err)
	}
	return parse(data)
}

// Load reads a catalog file from disk. Types in the file with names already
// present in the embedded catalog replace them; new names append.
func Load(path string) (*Registry, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tile: load %s: %w", path, err)
	}
	file, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("tile: parse %s: %w", path, err)
	}
	for _, t := range file.types {
		if i := reg.index(t.Name); i >= 0 {
			reg.types[i] = t
		} else {
			reg.types = append(reg.types, t)
		}
	}
	return reg, nil
}

func parse(data []byte) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("tile: unmarshal catalog: %w", err)
	}
	reg := &Registry{types: file.Tiles}
	for i, t := range reg.types {
		if t.Name == "" {
			return nil, fmt.Errorf("tile: catalog entry %d has no name", i)
		}
	}
	return reg, nil
}

// All returns the catalog in order. Callers must not mutate the slice.
func (r *Registry) All() []Type {
	return r.types
}

// Lookup returns the type named name.
func (r *Registry) Lookup(name string) (Type, bool) {
	if i := r.index(name); i >= 0 {
		return r.types[i], true
	}
	return Type{}, false
}

func (r *Registry) index(name string) int {
	for i := range r.types {
		if r.types[i].Name == name {
			return i
		}
	}
	return -1
}

// HexColor is a color parsed from a "#rrggbb" or "#rrggbbaa" YAML string.
type HexColor struct {
	color.NRGBA
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
