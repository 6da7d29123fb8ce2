package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depgen/internal/cli/config"
	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/deps"
	"github.com/matzehuels/depgen/pkg/license"
	"github.com/matzehuels/depgen/pkg/render"
)

// project is the validated state every command starts from.
type project struct {
	metadata *cargo.Metadata
	root     *cargo.Package
	deps     []cargo.Dependency // supported direct dependencies, in metadata order
	order    *deps.Order
}

// loadProject queries cargo, validates the root package's dependencies and
// reads the manifest order. It performs every check that does not depend on
// the chosen output.
func (c *CLI) loadProject(ctx context.Context, cfg *config.Config) (*project, error) {
	prog := newProgress(c.Logger)
	md, err := c.NewProvider(cfg).Metadata(ctx)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded metadata for %d packages", len(md.Packages)))

	root, err := md.RootPackage()
	if err != nil {
		return nil, err
	}

	filtered, err := deps.Filter(root.Dependencies, cfg.Registry)
	if err != nil {
		return nil, err
	}

	order, err := deps.LoadOrder(root.ManifestPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Resolved root package", "name", root.Name, "dependencies", len(filtered), "manifest", root.ManifestPath)

	return &project{metadata: md, root: root, deps: filtered, order: order}, nil
}

// byName maps each dependency name to f(dep).
func byName(dependencies []cargo.Dependency, f func(cargo.Dependency) string) map[string]string {
	m := make(map[string]string, len(dependencies))
	for _, dep := range dependencies {
		m[dep.Name] = f(dep)
	}
	return m
}

// generator builds the output of one command.
type generator func(cmd *cobra.Command, p *project) error

func (c *CLI) generateCommand(use, short string, gen generator) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := c.loadProject(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return gen(cmd, p)
		},
	}
}

func (c *CLI) specsCommand() *cobra.Command {
	return c.generateCommand("gen-specs", "Print a name@requirement specifier per dependency",
		func(cmd *cobra.Command, p *project) error {
			specs := deps.Reorder(byName(p.deps, render.Spec), p.order)
			return render.Lines(cmd.OutOrStdout(), specs)
		})
}

func (c *CLI) installCommand() *cobra.Command {
	return c.generateCommand("gen-command", "Print a cargo add command installing every dependency",
		func(cmd *cobra.Command, p *project) error {
			args := deps.Reorder(byName(p.deps, render.InstallArgs), p.order)
			return render.InstallCommand(cmd.OutOrStdout(), args)
		})
}

func (c *CLI) licenseCommand() *cobra.Command {
	return c.generateCommand("gen-license-urls", "Print a license URL per dependency",
		func(cmd *cobra.Command, p *project) error {
			idx := deps.NewIndex(p.metadata.Packages)
			urls, err := license.NewResolver().URLs(p.deps, idx)
			if err != nil {
				return err
			}
			c.Logger.Debug("Resolved license URLs", "count", len(urls), "packages", idx.Len())
			return render.Lines(cmd.OutOrStdout(), deps.Reorder(urls, p.order))
		})
}
