// Package schema provides the YAML format for vehicle signal schemas and
// turns schema files into signal trees. Both vssctl and vss-gen import
// this package.
package schema

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node types used in schema files.
const (
	TypeBranch    = "branch"
	TypeSensor    = "sensor"
	TypeActuator  = "actuator"
	TypeAttribute = "attribute"
)

//go:embed vehicle.yaml
var vehicleYAML []byte

// Definition is a complete schema loaded from YAML.
type Definition struct {
	Version     string    `yaml:"version"`
	Root        string    `yaml:"root"`
	Description string    `yaml:"description,omitempty"`
	Children    []RawNode `yaml:"children"`
}

// RawNode represents one branch or leaf in a schema file.
type RawNode struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`               // "branch", "sensor", "actuator", "attribute"
	Datatype    string    `yaml:"datatype,omitempty"` // leaves only: "uint8", "float", "string[]", etc.
	Unit        string    `yaml:"unit,omitempty"`
	Allowed     []string  `yaml:"allowed,omitempty"`
	Min         any       `yaml:"min,omitempty"`
	Max         any       `yaml:"max,omitempty"`
	Default     any       `yaml:"default,omitempty"`
	Instances   any       `yaml:"instances,omitempty"` // branches only: "Row[1,2]", [Left, Right], or a list of both
	Description string    `yaml:"description,omitempty"`
	Comment     string    `yaml:"comment,omitempty"`
	Deprecation string    `yaml:"deprecation,omitempty"`
	Children    []RawNode `yaml:"children,omitempty"`
}

// IsBranch reports whether the node is a branch.
func (n *RawNode) IsBranch() bool {
	return n.Type == TypeBranch
}

// Parse parses a schema definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if def.Root == "" {
		return nil, fmt.Errorf("schema definition missing root")
	}
	return &def, nil
}

// Load loads and parses a schema definition from a file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns a fresh copy of the embedded vehicle schema.
func Default() (*Definition, error) {
	return Parse(vehicleYAML)
}

// Marshal renders def as YAML.
func Marshal(def *Definition) ([]byte, error) {
	out, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return out, nil
}

// Leaves returns the number of leaves the definition declares once
// instances are expanded. Malformed instance declarations count as one slot.
func (d *Definition) Leaves() int {
	return countLeaves(d.Children)
}

func countLeaves(nodes []RawNode) int {
	total := 0
	for i := range nodes {
		n := &nodes[i]
		if !n.IsBranch() {
			total++
			continue
		}
		slots := 1
		if dims, err := ParseInstances(n.Instances); err == nil {
			for _, d := range dims {
				slots *= len(d)
			}
		}
		total += slots * countLeaves(n.Children)
	}
	return total
}
