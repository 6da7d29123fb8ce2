package cargo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/depgen/pkg/errors"
)

// Provider supplies the resolved dependency graph of a project.
type Provider interface {
	Metadata(ctx context.Context) (*Metadata, error)
}

// Command runs `cargo metadata` with all features enabled.
type Command struct {
	Bin          string // cargo binary (default "cargo")
	ManifestPath string // passed as --manifest-path when set
	Dir          string // working directory (default: current)
}

// Args returns the arguments passed to the cargo binary.
func (c *Command) Args() []string {
	args := []string{"metadata", "--format-version", "1", "--all-features"}
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}
	return args
}

// Metadata executes cargo and decodes its output. A non-zero exit is
// reported with cargo's stderr.
func (c *Command) Metadata(ctx context.Context) (*Metadata, error) {
	bin := c.Bin
	if bin == "" {
		bin = "cargo"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, c.Args()...)
	cmd.Dir = c.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Wrap(errors.ErrCodeMetadata, err, "%s metadata: %s", bin, msg)
		}
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "%s metadata", bin)
	}
	return Decode(&stdout)
}
