package license

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/deps"
)

// docsRSSource is the docs.rs rendering of a crate's packaged sources.
const docsRSSource = "https://docs.rs/crate/%s/%s/source/"

// licenseFiles are probed in order in the package directory.
var licenseFiles = []string{"LICENSE", "LICENSE.txt"}

// ResolveFunc computes the license URL of a resolved package.
type ResolveFunc func(pkg *cargo.Package) (string, error)

// Override replaces the generic resolution for the package called Name.
type Override struct {
	Name    string
	Resolve ResolveFunc
}

// DefaultOverrides lists the crates with a non-standard license location.
var DefaultOverrides = []Override{
	{Name: "proconio", Resolve: GitTreeURL("https://github.com/statiolake/proconio-rs/tree/%s")},
	{Name: "nalgebra", Resolve: OriginalManifestURL},
}

// GitTreeURL returns a ResolveFunc formatting tmpl with the commit from the
// package's .cargo_vcs_info.json.
func GitTreeURL(tmpl string) ResolveFunc {
	return func(pkg *cargo.Package) (string, error) {
		sha1, err := ReadGitSHA1(pkg.Name, pkg.ManifestDir())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(tmpl, sha1), nil
	}
}

// OriginalManifestURL links to the docs.rs rendering of the package's
// Cargo.toml as written by its authors.
func OriginalManifestURL(pkg *cargo.Package) (string, error) {
	return fmt.Sprintf(docsRSSource, pkg.Name, pkg.Version) + "Cargo.toml.orig", nil
}

// SourceURL links to the docs.rs source listing, pointing at LICENSE or
// LICENSE.txt when the package ships one.
func SourceURL(pkg *cargo.Package) (string, error) {
	url := fmt.Sprintf(docsRSSource, pkg.Name, pkg.Version)
	dir := pkg.ManifestDir()
	for _, name := range licenseFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return url + name, nil
		}
	}
	return url, nil
}

// Resolver resolves license URLs, consulting Overrides before SourceURL.
type Resolver struct {
	Overrides []Override
}

// NewResolver returns a Resolver using DefaultOverrides.
func NewResolver() *Resolver {
	return &Resolver{Overrides: DefaultOverrides}
}

// Resolve returns the license URL for pkg.
func (r *Resolver) Resolve(pkg *cargo.Package) (string, error) {
	for _, o := range r.Overrides {
		if o.Name == pkg.Name {
			return o.Resolve(pkg)
		}
	}
	return SourceURL(pkg)
}

// URLs resolves every dependency through idx and returns the license URL
// of each, keyed by dependency name. The first failure aborts the call.
func (r *Resolver) URLs(dependencies []cargo.Dependency, idx *deps.Index) (map[string]string, error) {
	urls := make(map[string]string, len(dependencies))
	for _, dep := range dependencies {
		pkg, err := idx.Lookup(dep)
		if err != nil {
			return nil, err
		}
		url, err := r.Resolve(pkg)
		if err != nil {
			return nil, err
		}
		urls[dep.Name] = url
	}
	return urls, nil
}
