// Package manifest handles easm.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents an easm.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Source  Source  `toml:"source"`
	Output  Output  `toml:"output"`

	// Dir is the directory containing the easm.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Source configures the assembly entry point.
type Source struct {
	Entry string `toml:"entry"`
}

// Output configures where build products go.
type Output struct {
	Hex      string `toml:"hex"`
	Artifact string `toml:"artifact"`
}

// Load parses an easm.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "easm.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Project.Name == "" {
		m.Project.Name = filepath.Base(m.Dir)
	}
	if m.Source.Entry == "" {
		m.Source.Entry = "main.easm"
	}
	if m.Output.Hex == "" {
		m.Output.Hex = m.Project.Name + ".hex"
	}

	return &m, nil
}

// EntryPath returns the absolute path of the assembly entry point.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Dir, m.Source.Entry)
}

// HexPath returns the absolute path of the hex output.
func (m *Manifest) HexPath() string {
	return filepath.Join(m.Dir, m.Output.Hex)
}

// ArtifactPath returns the absolute path of the artifact output, or the
// empty string when no artifact is configured.
func (m *Manifest) ArtifactPath() string {
	if m.Output.Artifact == "" {
		return ""
	}
	return filepath.Join(m.Dir, m.Output.Artifact)
}
