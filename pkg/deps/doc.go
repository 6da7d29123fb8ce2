// Package deps filters, indexes and orders a Cargo project's direct
// dependencies.
//
// # Overview
//
// The pieces are used together by every depgen command:
//
//  1. [Filter] validates the root package's dependencies against the
//     supported shape and fails on the first one it cannot handle.
//  2. [NewIndex] maps (name, version) to the resolved [cargo.Package].
//  3. [LoadOrder] reads the [dependencies] key order from Cargo.toml.
//  4. [Reorder] emits per-dependency payloads in that manifest order.
//
// # Supported Dependencies
//
// Only plain crates.io dependencies are supported: normal kind, registry
// source, default features on, not optional, no target and no rename.
// Anything else aborts the whole run, so output is never built from a
// partially understood dependency set.
//
// # Ordering
//
// Names declared in the manifest sort by declaration position. Names the
// manifest does not declare sort after all declared names, in no particular
// order among themselves.
//
//	order, _ := deps.LoadOrder(root.ManifestPath)
//	specs := map[string]string{"serde": "serde@1", "anyhow": "anyhow@1"}
//	for _, s := range deps.Reorder(specs, order) {
//	    fmt.Println(s)
//	}
//
// [cargo.Package]: github.com/matzehuels/depgen/pkg/cargo.Package
package deps
