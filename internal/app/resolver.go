package app

import (
	"github.com/Francouer/repo-sync/internal/domain"
	"github.com/Francouer/repo-sync/internal/rpmver"
)

// ResolveCandidates filters a repository's available packages down to
// the candidate set for one sync run. Filters apply in a fixed order:
// newest-per-name first, then the source restriction, then the
// architecture allow-list. Narrowing by architecture before the newest
// computation would change which package counts as newest, so the
// order is preserved exactly even where it looks surprising: a newer
// package of an excluded architecture can shadow an older one of an
// allowed architecture.
func ResolveCandidates(available []domain.Package, config *domain.SyncConfig) []domain.Package {
	candidates := available
	if config.NewestOnly {
		candidates = newestPerName(candidates)
	}
	if config.Source {
		candidates = filterArches(candidates, []string{"src"})
	} else if len(config.Arches) > 0 {
		candidates = filterArches(candidates, config.Arches)
	}
	return candidates
}

// newestPerName keeps, for every package name, only the packages tied
// for the highest epoch:version-release. Ties keep every architecture
// at that version; input order is preserved.
func newestPerName(pkgs []domain.Package) []domain.Package {
	best := make(map[string]domain.Package, len(pkgs))
	for _, pkg := range pkgs {
		cur, ok := best[pkg.Name]
		if !ok || compareEVR(pkg, cur) > 0 {
			best[pkg.Name] = pkg
		}
	}
	var result []domain.Package
	for _, pkg := range pkgs {
		if compareEVR(pkg, best[pkg.Name]) == 0 {
			result = append(result, pkg)
		}
	}
	return result
}

func compareEVR(a, b domain.Package) int {
	return rpmver.CompareEVR(a.Epoch, a.Version, a.Release, b.Epoch, b.Version, b.Release)
}

func filterArches(pkgs []domain.Package, arches []string) []domain.Package {
	allowed := make(map[string]bool, len(arches))
	for _, arch := range arches {
		allowed[arch] = true
	}
	var result []domain.Package
	for _, pkg := range pkgs {
		if allowed[pkg.Arch] {
			result = append(result, pkg)
		}
	}
	return result
}
