package deps

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/errors"
)

type indexKey struct {
	name    string
	version string
}

// Index resolves (name, version) pairs to resolved packages.
type Index struct {
	packages map[indexKey]*cargo.Package
}

// NewIndex indexes every package of a metadata snapshot.
func NewIndex(packages []cargo.Package) *Index {
	idx := &Index{packages: make(map[indexKey]*cargo.Package, len(packages))}
	for i := range packages {
		p := &packages[i]
		idx.packages[indexKey{p.Name, p.Version}] = p
	}
	return idx
}

// Len returns the number of indexed packages.
func (idx *Index) Len() int { return len(idx.packages) }

// Get returns the package with exactly the given name and version.
func (idx *Index) Get(name, version string) (*cargo.Package, bool) {
	p, ok := idx.packages[indexKey{name, version}]
	return p, ok
}

// Lookup resolves a dependency to its package. The requirement is used as a
// version after stripping leading '=', so only `=x.y.z` or `x.y.z` pins can
// resolve.
func (idx *Index) Lookup(dep cargo.Dependency) (*cargo.Package, error) {
	version := strings.TrimLeft(dep.Req, "=")
	if p, ok := idx.Get(dep.Name, version); ok {
		return p, nil
	}
	if !semver.IsValid("v" + version) {
		return nil, errors.New(errors.ErrCodePackageNotFound,
			"%s: requirement %q is not an exact version; pin it as \"=x.y.z\"", dep.Name, dep.Req)
	}
	return nil, errors.New(errors.ErrCodePackageNotFound,
		"%s@%s not found in cargo metadata", dep.Name, version)
}
