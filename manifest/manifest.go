// Package manifest handles the addon metadata file that travels with every
// addon package: identity, dependencies, and the extension points the addon
// provides, plus generation of the settings schema the host renders.
package manifest

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mediakit/addon-sdk/api"
)

// validate is a package-level singleton; creating a validator per call is
// expensive.
var validate = validator.New()

// Dependency names another addon this one requires.
type Dependency struct {
	Addon    string `json:"addon" yaml:"addon" validate:"required"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty" validate:"omitempty,semver"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Extension declares one capability the addon provides to the host.
type Extension struct {
	// Point is the instance-type name the host binds this extension to,
	// e.g. "screensaver".
	Point string `json:"point" yaml:"point" validate:"required"`

	// Library is the binary payload implementing the extension, relative
	// to the addon install path.
	Library string `json:"library,omitempty" yaml:"library,omitempty"`
}

// InstanceType resolves the extension point to its host type tag.
func (e Extension) InstanceType() (api.InstanceType, bool) {
	for t := api.TypeMain; t <= api.TypeGame; t++ {
		if t.String() == e.Point {
			return t, true
		}
	}
	return 0, false
}

// Manifest is the root addon metadata record.
type Manifest struct {
	ID          string       `json:"id" yaml:"id" validate:"required"`
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Version     string       `json:"version" yaml:"version" validate:"required,semver"`
	Provider    string       `json:"provider,omitempty" yaml:"provider,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Requires    []Dependency `json:"requires,omitempty" yaml:"requires,omitempty" validate:"dive"`
	Extensions  []Extension  `json:"extensions" yaml:"extensions" validate:"min=1,dive"`
}

// Parse unmarshals and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// ProvidedTypes lists the instance types the manifest declares, in file
// order. Unknown extension points are skipped.
func (m *Manifest) ProvidedTypes() []api.InstanceType {
	var types []api.InstanceType
	for _, e := range m.Extensions {
		if t, ok := e.InstanceType(); ok {
			types = append(types, t)
		}
	}
	return types
}
