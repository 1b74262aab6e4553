package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

// PathResolver computes and validates local destinations for one sync
// run. The target map is owned by the run; two calls for the same
// repository always yield the identical string.
type PathResolver struct {
	cwd          string
	downloadPath string
	targets      map[string]string
}

// NewPathResolver creates a path resolver rooted at the current
// working directory
func NewPathResolver(downloadPath string) (*PathResolver, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &PathResolver{
		cwd:          cwd,
		downloadPath: downloadPath,
		targets:      make(map[string]string),
	}, nil
}

// RepositoryTarget returns the normalized absolute target directory
// for a repository: downloadPath joined with the repository id,
// resolved against the working directory when relative.
func (r *PathResolver) RepositoryTarget(repo domain.Repository) string {
	if target, ok := r.targets[repo.ID]; ok {
		return target
	}
	base := r.downloadPath
	if !filepath.IsAbs(base) {
		base = filepath.Join(r.cwd, base)
	}
	target := filepath.Join(base, repo.ID)
	r.targets[repo.ID] = target
	return target
}

// PackageDestination computes the full local path for a package file.
// The repository target must remain a strict prefix of the result;
// a location field that climbs out of the target (for example via
// "../") is rejected before anything is written.
func (r *PathResolver) PackageDestination(pkg domain.Package) (string, error) {
	target := r.RepositoryTarget(pkg.Repo)
	dest := filepath.Join(target, pkg.Location)
	if !strings.HasPrefix(dest, target+string(os.PathSeparator)) {
		return "", &domain.PathEscapeError{
			RepoID:      pkg.Repo.ID,
			Destination: dest,
			Target:      target,
		}
	}
	return dest, nil
}
