// Package pkg holds the libraries behind depgen.
//
// The data flow of every depgen command:
//
//	cargo metadata  ->  [cargo]    (resolved packages, root dependencies)
//	                ->  [deps]     (filter, index, manifest order, reorder)
//	                ->  [license]  (license URLs, gen-license-urls only)
//	                ->  [render]   (text output)
//
// [errors] defines the error codes shared by all of them and [buildinfo]
// carries version information injected at build time.
package pkg
