package deps

import (
	"strings"
	"testing"

	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/errors"
)

func testIndex() *Index {
	return NewIndex([]cargo.Package{
		{Name: "app", Version: "0.1.0"},
		{Name: "foo", Version: "1.2.3", ManifestPath: "/reg/foo-1.2.3/Cargo.toml"},
		{Name: "foo", Version: "2.0.0", ManifestPath: "/reg/foo-2.0.0/Cargo.toml"},
	})
}

func TestIndexGet(t *testing.T) {
	idx := testIndex()
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}

	p, ok := idx.Get("foo", "2.0.0")
	if !ok {
		t.Fatal("Get(foo, 2.0.0) not found")
	}
	if p.ManifestPath != "/reg/foo-2.0.0/Cargo.toml" {
		t.Errorf("ManifestPath = %q", p.ManifestPath)
	}

	if _, ok := idx.Get("foo", "1.0.0"); ok {
		t.Error("Get(foo, 1.0.0) should not be found")
	}
}

func TestIndexLookup(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		req  string
		want string
	}{
		{"=1.2.3", "/reg/foo-1.2.3/Cargo.toml"},
		{"1.2.3", "/reg/foo-1.2.3/Cargo.toml"},
		{"=2.0.0", "/reg/foo-2.0.0/Cargo.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.req, func(t *testing.T) {
			p, err := idx.Lookup(registryDep("foo", tt.req))
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if p.ManifestPath != tt.want {
				t.Errorf("ManifestPath = %q, want %q", p.ManifestPath, tt.want)
			}
		})
	}
}

func TestIndexLookupErrors(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name    string
		dep     cargo.Dependency
		wantMsg string
	}{
		{"missing version", registryDep("foo", "=1.9.9"), "foo@1.9.9 not found"},
		{"missing package", registryDep("bar", "=1.0.0"), "bar@1.0.0 not found"},
		{"range requirement", registryDep("foo", "^1.2.3"), "not an exact version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idx.Lookup(tt.dep)
			if !errors.Is(err, errors.ErrCodePackageNotFound) {
				t.Fatalf("Lookup error = %v, want code %s", err, errors.ErrCodePackageNotFound)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}
