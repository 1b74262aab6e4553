package app

import (
	"path/filepath"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

const packageSuffix = ".rpm"

type inventoryKey struct {
	repoID   string
	filename string
}

// keepSet indexes the just-synchronized candidate set by
// (repository id, file name) so local files can be reconciled
// against it.
func keepSet(candidates []domain.Package) map[inventoryKey]bool {
	keep := make(map[inventoryKey]bool, len(candidates))
	for _, pkg := range candidates {
		keep[inventoryKey{pkg.Repo.ID, pkg.Basename()}] = true
	}
	return keep
}

// deleteStalePackages removes every package file directly under the
// repository target that the candidate set no longer contains. Only
// regular files with the package suffix are considered; anything else
// in the directory is left alone. Individual delete failures are
// logged and skipped.
func deleteStalePackages(logger domain.Logger, files domain.FileRepository, repo domain.Repository, target string, keep map[inventoryKey]bool) int {
	if !files.FileExists(target) {
		return 0
	}
	names, err := files.ListDir(target)
	if err != nil {
		logger.Error("Failed to list repository target %s: %v", target, err)
		return 0
	}
	deleted := 0
	for _, name := range names {
		if !strings.HasSuffix(name, packageSuffix) {
			continue
		}
		path := filepath.Join(target, name)
		if !files.IsRegularFile(path) {
			continue
		}
		if keep[inventoryKey{repo.ID, name}] {
			continue
		}
		if err := files.Remove(path); err != nil {
			logger.Error("failed to delete file %s", path)
			continue
		}
		logger.Info("[DELETED] %s", path)
		deleted++
	}
	return deleted
}
