// Package render formats depgen artifacts as text.
//
// The functions here only format; ordering and validation happen before
// anything is rendered, so a failed run never produces partial output.
//
//	render.Lines(os.Stdout, specs)          // one artifact per line
//	render.InstallCommand(os.Stdout, args)  // multi-line `cargo add` command
package render
