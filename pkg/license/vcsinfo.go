package license

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/depgen/pkg/errors"
)

// VCSInfoFile is the side-file cargo package writes into every published crate.
const VCSInfoFile = ".cargo_vcs_info.json"

type vcsInfo struct {
	Git struct {
		SHA1 string `json:"sha1"`
	} `json:"git"`
}

// ReadGitSHA1 returns the commit recorded in dir's .cargo_vcs_info.json.
// pkg names the crate in error messages.
func ReadGitSHA1(pkg, dir string) (string, error) {
	path := filepath.Join(dir, VCSInfoFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSideFile, err, "%s: reading %s", pkg, path)
	}

	var info vcsInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return "", errors.Wrap(errors.ErrCodeSideFile, err, "%s: parsing %s", pkg, path)
	}
	if info.Git.SHA1 == "" {
		return "", errors.New(errors.ErrCodeSideFile, "%s: %s has no git.sha1", pkg, path)
	}
	return info.Git.SHA1, nil
}
