package cargo

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/matzehuels/depgen/pkg/errors"
)

// CratesIORegistry is the source identifier cargo reports for crates.io.
const CratesIORegistry = "registry+https://github.com/rust-lang/crates.io-index"

// DependencyKind classifies a dependency edge.
type DependencyKind string

// Dependency kinds as reported by cargo metadata.
const (
	KindNormal      DependencyKind = "normal"
	KindBuild       DependencyKind = "build"
	KindDevelopment DependencyKind = "dev"
)

// UnmarshalJSON maps cargo's null kind to KindNormal.
func (k *DependencyKind) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*k = KindNormal
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		s = string(KindNormal)
	}
	*k = DependencyKind(s)
	return nil
}

// Dependency is an edge from a package to a crate it declares.
//
// Source, Target and Rename are empty when cargo reports null.
type Dependency struct {
	Name                string         `json:"name"`
	Req                 string         `json:"req"`
	Kind                DependencyKind `json:"kind"`
	Source              string         `json:"source"`
	UsesDefaultFeatures bool           `json:"uses_default_features"`
	Optional            bool           `json:"optional"`
	Target              string         `json:"target"`
	Rename              string         `json:"rename"`
	Features            []string       `json:"features"`
}

// Package is a resolved node of the dependency graph.
type Package struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Source       string       `json:"source"` // empty for path packages
	License      string       `json:"license"`
	ManifestPath string       `json:"manifest_path"`
	Dependencies []Dependency `json:"dependencies"`
}

// ManifestDir returns the directory containing the package's Cargo.toml.
func (p *Package) ManifestDir() string {
	return filepath.Dir(p.ManifestPath)
}

// Metadata is the subset of `cargo metadata --format-version 1` output
// depgen consumes.
type Metadata struct {
	Packages      []Package `json:"packages"`
	WorkspaceRoot string    `json:"workspace_root"`
	Resolve       *Resolve  `json:"resolve"`
}

// Resolve holds the resolved dependency graph. Only the root is used.
type Resolve struct {
	Root string `json:"root"`
}

// Decode reads cargo metadata JSON from r.
func Decode(r io.Reader) (*Metadata, error) {
	var md Metadata
	if err := json.NewDecoder(r).Decode(&md); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "decoding cargo metadata")
	}
	return &md, nil
}

// RootPackage returns the package cargo metadata was run for.
//
// With a resolve section the root is looked up by package id. Without one
// (cargo metadata --no-deps) the root is the package whose manifest is the
// workspace root's Cargo.toml. Virtual workspaces have no root package.
func (m *Metadata) RootPackage() (*Package, error) {
	if m.Resolve != nil {
		if m.Resolve.Root != "" {
			for i := range m.Packages {
				if m.Packages[i].ID == m.Resolve.Root {
					return &m.Packages[i], nil
				}
			}
		}
	} else {
		manifest := filepath.Join(m.WorkspaceRoot, "Cargo.toml")
		for i := range m.Packages {
			if filepath.Clean(m.Packages[i].ManifestPath) == manifest {
				return &m.Packages[i], nil
			}
		}
	}
	return nil, errors.New(errors.ErrCodeMissingRootPackage, "no root package in %s", m.WorkspaceRoot)
}
