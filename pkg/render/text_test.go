package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/depgen/pkg/cargo"
)

func TestSpec(t *testing.T) {
	tests := []struct {
		dep  cargo.Dependency
		want string
	}{
		{cargo.Dependency{Name: "foo", Req: "1.2.3"}, "foo@1.2.3"},
		{cargo.Dependency{Name: "itertools", Req: "=0.10.5"}, "itertools@=0.10.5"},
		{cargo.Dependency{Name: "anyhow", Req: "^1"}, "anyhow@^1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Spec(tt.dep); got != tt.want {
				t.Errorf("Spec() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstallArgs(t *testing.T) {
	tests := []struct {
		name string
		dep  cargo.Dependency
		want string
	}{
		{
			name: "no features",
			dep:  cargo.Dependency{Name: "proconio", Req: "=0.4.3"},
			want: "proconio@=0.4.3",
		},
		{
			name: "one feature",
			dep:  cargo.Dependency{Name: "proconio", Req: "=0.4.3", Features: []string{"derive"}},
			want: "proconio@=0.4.3 --features proconio@=0.4.3/derive",
		},
		{
			name: "several features",
			dep:  cargo.Dependency{Name: "num", Req: "=0.4.0", Features: []string{"rand", "serde"}},
			want: "num@=0.4.0 --features num@=0.4.0/rand,num@=0.4.0/serde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallArgs(tt.dep); got != tt.want {
				t.Errorf("InstallArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	if err := Lines(&buf, []string{"B@2.0", "A@1.0"}); err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if got, want := buf.String(), "B@2.0\nA@1.0\n"; got != want {
		t.Errorf("Lines() wrote %q, want %q", got, want)
	}
}

func TestInstallCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "several",
			args: []string{"a@=1.0.0", "b@=2.0.0 --features b@=2.0.0/x", "c@=3.0.0"},
			want: "cargo add \\\n  a@=1.0.0 \\\n  b@=2.0.0 --features b@=2.0.0/x \\\n  c@=3.0.0\n",
		},
		{
			name: "single",
			args: []string{"a@=1.0.0"},
			want: "cargo add \\\n  a@=1.0.0\n",
		},
		{
			name: "empty",
			args: nil,
			want: "cargo add \\\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := InstallCommand(&buf, tt.args); err != nil {
				t.Fatalf("InstallCommand failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("InstallCommand() wrote %q, want %q", got, tt.want)
			}
		})
	}
}
