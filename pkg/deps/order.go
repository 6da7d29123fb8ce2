package deps

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depgen/pkg/errors"
)

const dependencyTable = "dependencies"

// Order is the declaration order of a manifest's [dependencies] table.
type Order struct {
	names []string
	rank  map[string]int
}

// NewOrder builds an order from names. Later duplicates are ignored.
func NewOrder(names ...string) *Order {
	o := &Order{rank: make(map[string]int, len(names))}
	for _, name := range names {
		o.add(name)
	}
	return o
}

func (o *Order) add(name string) {
	if _, ok := o.rank[name]; ok {
		return
	}
	o.rank[name] = len(o.names)
	o.names = append(o.names, name)
}

// Names returns the declared names in order.
func (o *Order) Names() []string {
	return append([]string(nil), o.names...)
}

// Len returns the number of declared names.
func (o *Order) Len() int { return len(o.names) }

// Rank returns the declaration position of name, or false if the manifest
// does not declare it.
func (o *Order) Rank(name string) (int, bool) {
	r, ok := o.rank[name]
	return r, ok
}

// LoadOrder reads the manifest at path and returns its dependency order.
func LoadOrder(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "reading %s", path)
	}
	o, err := ParseOrder(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parsing %s", path)
	}
	return o, nil
}

// ParseOrder returns the [dependencies] keys of a Cargo.toml document in the
// order they appear. Inline tables, [dependencies.name] sub-tables and
// dotted keys all declare their first key segment. A manifest without a
// [dependencies] table yields an empty order.
func ParseOrder(data []byte) (*Order, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	o := NewOrder()
	for _, key := range md.Keys() {
		if len(key) >= 2 && key[0] == dependencyTable {
			o.add(key[1])
		}
	}
	return o, nil
}
