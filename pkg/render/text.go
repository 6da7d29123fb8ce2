package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/depgen/pkg/cargo"
)

// InstallHeader is the first line of a rendered install command.
const InstallHeader = `cargo add \`

// Spec returns the "name@req" specifier of dep.
func Spec(dep cargo.Dependency) string {
	return dep.Name + "@" + dep.Req
}

// InstallArgs returns the `cargo add` arguments for dep: its specifier,
// followed by "--features spec/f1,spec/f2" when features were requested.
func InstallArgs(dep cargo.Dependency) string {
	spec := Spec(dep)
	if len(dep.Features) == 0 {
		return spec
	}
	features := make([]string, len(dep.Features))
	for i, f := range dep.Features {
		features[i] = spec + "/" + f
	}
	return spec + " --features " + strings.Join(features, ",")
}

// Lines writes each item on its own line.
func Lines(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintln(bw, item); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// InstallCommand writes a shell command adding every entry of args, one per
// line, joined with line continuations.
func InstallCommand(w io.Writer, args []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, InstallHeader)
	for i, a := range args {
		fmt.Fprint(bw, "  "+a)
		if i < len(args)-1 {
			fmt.Fprint(bw, ` \`)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
