package deps_test

import (
	"fmt"

	"github.com/matzehuels/depgen/pkg/deps"
)

func ExampleReorder() {
	order, _ := deps.ParseOrder([]byte(`
[dependencies]
proconio = "=0.4.3"
itertools = "=0.10.5"
`))

	specs := map[string]string{
		"itertools": "itertools@=0.10.5",
		"proconio":  "proconio@=0.4.3",
	}
	for _, s := range deps.Reorder(specs, order) {
		fmt.Println(s)
	}
	// Output:
	// proconio@=0.4.3
	// itertools@=0.10.5
}
