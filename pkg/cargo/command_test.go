package cargo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matzehuels/depgen/pkg/errors"
)

// fakeCargo writes an executable shell script standing in for cargo.
func fakeCargo(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "cargo")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"default", Command{}, "metadata --format-version 1 --all-features"},
		{"manifest path", Command{ManifestPath: "sub/Cargo.toml"}, "metadata --format-version 1 --all-features --manifest-path sub/Cargo.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(tt.cmd.Args(), " "); got != tt.want {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandMetadata(t *testing.T) {
	fixture, err := filepath.Abs("testdata/metadata.json")
	if err != nil {
		t.Fatal(err)
	}
	bin := fakeCargo(t, "cat '"+fixture+"'")

	md, err := (&Command{Bin: bin}).Metadata(context.Background())
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	root, err := md.RootPackage()
	if err != nil {
		t.Fatalf("RootPackage failed: %v", err)
	}
	if root.Name != "app" {
		t.Errorf("root = %q, want app", root.Name)
	}
}

func TestCommandMetadataFailure(t *testing.T) {
	bin := fakeCargo(t, "echo 'error: could not find `Cargo.toml`' >&2\nexit 101")

	_, err := (&Command{Bin: bin}).Metadata(context.Background())
	if !errors.Is(err, errors.ErrCodeMetadata) {
		t.Fatalf("Metadata error = %v, want code %s", err, errors.ErrCodeMetadata)
	}
	if !strings.Contains(err.Error(), "could not find `Cargo.toml`") {
		t.Errorf("error should carry cargo's stderr, got %v", err)
	}
}

func TestCommandMetadataBadOutput(t *testing.T) {
	bin := fakeCargo(t, "echo 'warning: not json'")

	_, err := (&Command{Bin: bin}).Metadata(context.Background())
	if !errors.Is(err, errors.ErrCodeMetadata) {
		t.Errorf("Metadata error = %v, want code %s", err, errors.ErrCodeMetadata)
	}
}

func TestCommandMetadataCanceled(t *testing.T) {
	bin := fakeCargo(t, "sleep 5")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Command{Bin: bin}).Metadata(ctx)
	if err != context.Canceled {
		t.Errorf("Metadata error = %v, want context.Canceled", err)
	}
}
