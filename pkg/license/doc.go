// Package license locates a best-effort license URL for each dependency.
//
// # Resolution
//
// A [Resolver] first walks its override table in order. The first
// [Override] whose Name equals the package name decides the URL on its own.
// Packages without an override get a docs.rs source listing:
//
//	https://docs.rs/crate/{name}/{version}/source/
//
// with LICENSE appended when that file exists next to the package's
// Cargo.toml, or LICENSE.txt when only that one does.
//
// # Overrides
//
// [DefaultOverrides] covers crates whose license location is not the
// generic one. proconio links to its repository tree at the commit recorded
// in .cargo_vcs_info.json. nalgebra links to the original Cargo.toml, where
// its license terms are stated (see the project's clarify.toml).
//
// Adding a crate is a one-line change to the table:
//
//	{Name: "foo", Resolve: GitTreeURL("https://github.com/owner/foo/tree/%s")},
package license
