package deps

import (
	"fmt"

	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/errors"
)

// Filter returns the dependencies of a root package that depgen can process.
//
// Every dependency must be a normal dependency from registry with default
// features, not optional, with no target restriction and no rename. The
// first dependency that is not fails the whole call; on success the result
// is the input in its original order.
func Filter(dependencies []cargo.Dependency, registry string) ([]cargo.Dependency, error) {
	out := make([]cargo.Dependency, 0, len(dependencies))
	for _, dep := range dependencies {
		if err := checkSupported(dep, registry); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, nil
}

func checkSupported(dep cargo.Dependency, registry string) error {
	unsupported := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeUnsupportedDependency, "%s: %s", dep.Name, fmt.Sprintf(format, args...))
	}

	switch {
	case dep.Kind != cargo.KindNormal:
		return unsupported("%s dependencies are not supported", dep.Kind)
	case dep.Source != registry:
		if dep.Source == "" {
			return unsupported("path dependencies are not supported")
		}
		return unsupported("source %q is not supported", dep.Source)
	case !dep.UsesDefaultFeatures:
		return unsupported("default-features = false is not supported")
	case dep.Optional:
		return unsupported("optional dependencies are not supported")
	case dep.Target != "":
		return unsupported("target-specific dependencies (%s) are not supported", dep.Target)
	case dep.Rename != "":
		return unsupported("renamed dependencies (%s = { package = %q }) are not supported", dep.Rename, dep.Name)
	}
	return nil
}
