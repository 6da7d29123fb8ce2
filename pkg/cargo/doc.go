// Package cargo reads a project's resolved dependency graph from
// `cargo metadata`.
//
// # Overview
//
// [Command] runs `cargo metadata --format-version 1 --all-features` and
// decodes the subset of its JSON that depgen needs into [Metadata]. Any type
// implementing [Provider] can stand in for it, which is how tests feed
// fixtures without a cargo installation.
//
//	md, err := (&cargo.Command{}).Metadata(ctx)
//	root, err := md.RootPackage()
//	for _, dep := range root.Dependencies {
//	    fmt.Println(dep.Name, dep.Req, dep.Kind)
//	}
//
// Cargo reports a null dependency kind for normal dependencies; it decodes
// to [KindNormal]. Null sources, targets and renames decode to "".
package cargo
