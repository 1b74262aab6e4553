package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Francouer/repo-sync/internal/domain"
)

type RepoSyncServiceImpl struct {
	logger   domain.Logger
	files    domain.FileRepository
	index    domain.PackageIndex
	transfer domain.Transfer
	decomp   domain.Decompressor
}

// NewRepoSyncService creates a new repo sync service
func NewRepoSyncService(
	logger domain.Logger,
	files domain.FileRepository,
	index domain.PackageIndex,
	transfer domain.Transfer,
	decomp domain.Decompressor,
) domain.RepoSyncService {
	return &RepoSyncServiceImpl{
		logger:   logger,
		files:    files,
		index:    index,
		transfer: transfer,
		decomp:   decomp,
	}
}

func (s *RepoSyncServiceImpl) ValidateConfig(config *domain.SyncConfig) error {
	if config == nil {
		return &domain.ConfigurationError{Reason: "config cannot be nil"}
	}
	if len(config.Repositories) == 0 {
		return &domain.ConfigurationError{Reason: "no repositories configured"}
	}
	if config.DownloadPath == "" {
		return &domain.ConfigurationError{Reason: "download path is required"}
	}
	known := make(map[string]bool, len(config.Repositories))
	for _, repo := range config.Repositories {
		known[repo.ID] = true
	}
	for _, id := range config.RepoIDs {
		if !known[id] {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("unknown repo: '%s'", id)}
		}
	}
	return nil
}

// Sync mirrors every enabled repository in turn. Repositories are
// processed sequentially; a failure in one repository is recorded in
// its result and the run continues with the next.
func (s *RepoSyncServiceImpl) Sync(ctx context.Context, config *domain.SyncConfig) ([]domain.SyncResult, error) {
	if err := s.ValidateConfig(config); err != nil {
		return nil, err
	}

	repos := selectRepositories(config)
	if len(repos) == 0 {
		return nil, &domain.ConfigurationError{Reason: "no enabled repositories to sync"}
	}

	paths, err := NewPathResolver(config.DownloadPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve download path: %w", err)
	}
	planner := NewTransferPlanner(s.logger, s.files, s.index, s.transfer)

	s.logger.Info("Processing %d repository(ies)...", len(repos))

	var results []domain.SyncResult
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := s.syncRepository(ctx, repo, config, paths, planner)
		results = append(results, result)
		if result.Error != nil {
			s.logger.Error("Failed to sync repository %s: %v", repo.ID, result.Error)
		}
	}

	successCount := 0
	for _, result := range results {
		if result.Success {
			successCount++
		}
	}
	if successCount == len(results) {
		s.logger.Success("All repositories synchronized successfully!")
	} else {
		s.logger.Warning("%d out of %d repositories synchronized successfully", successCount, len(results))
	}

	return results, nil
}

// selectRepositories applies the --repo restriction and source-repo
// activation to the configured set and returns the enabled
// repositories in configuration order.
func selectRepositories(config *domain.SyncConfig) []domain.Repository {
	repos := make([]domain.Repository, len(config.Repositories))
	copy(repos, config.Repositories)

	if len(config.RepoIDs) > 0 {
		wanted := make(map[string]bool, len(config.RepoIDs))
		for _, id := range config.RepoIDs {
			wanted[id] = true
		}
		for i := range repos {
			repos[i].Enabled = wanted[repos[i].ID]
		}
	}

	if config.Source {
		companions := make(map[string]bool)
		for _, repo := range repos {
			if repo.Enabled && repo.SourceRepo != "" {
				companions[repo.SourceRepo] = true
			}
		}
		for i := range repos {
			if companions[repos[i].ID] {
				repos[i].Enabled = true
			}
		}
	}

	var enabled []domain.Repository
	for _, repo := range repos {
		if repo.Enabled {
			enabled = append(enabled, repo)
		}
	}
	return enabled
}

// syncRepository runs the per-repository stages in order: metadata and
// comps replication when requested, then package acquisition, then
// stale-file deletion when requested. Metadata and comps failures are
// logged but never block the package stage; a package-stage failure is
// fatal for this repository and skips deletion.
func (s *RepoSyncServiceImpl) syncRepository(ctx context.Context, repo domain.Repository, config *domain.SyncConfig, paths *PathResolver, planner *TransferPlanner) domain.SyncResult {
	result := domain.SyncResult{Repository: repo}

	s.logger.Info("Processing repository: %s", repo.ID)
	target := paths.RepositoryTarget(repo)

	if config.DownloadMetadata {
		if err := s.syncMetadata(repo, target); err != nil {
			s.logger.Warning("Failed to download metadata for repository %s: %v", repo.ID, err)
		}
	}
	if config.DownloadComps {
		if err := s.syncComps(repo, target); err != nil {
			s.logger.Warning("Failed to download comps for repository %s: %v", repo.ID, err)
		}
	}

	available, err := s.index.Available(repo)
	if err != nil {
		result.Error = fmt.Errorf("failed to query package index for %s: %w", repo.ID, err)
		return result
	}
	candidates := ResolveCandidates(available, config)

	plan := planner.Plan(candidates)
	result.Downloaded, result.Copied, err = planner.Sync(ctx, repo, plan, paths)
	if err != nil {
		result.Error = err
		return result
	}

	if config.Delete {
		result.Deleted = deleteStalePackages(s.logger, s.files, repo, target, keepSet(candidates))
	}

	result.Success = true
	return result
}

func (s *RepoSyncServiceImpl) syncMetadata(repo domain.Repository, target string) error {
	if err := s.files.CreateDir(target); err != nil {
		return &domain.FilesystemError{RepoID: repo.ID, Path: target, Err: err}
	}
	if err := s.index.MaterializeMetadata(repo, target); err != nil {
		return err
	}
	s.logger.Info("metadata for repository %s saved", repo.ID)
	return nil
}

// syncComps decompresses the repository's group descriptor to
// comps.xml under the target. A repository without one is a no-op.
func (s *RepoSyncServiceImpl) syncComps(repo domain.Repository, target string) error {
	compsPath, err := s.index.CompsPath(repo)
	if err != nil {
		return err
	}
	if compsPath == "" {
		return nil
	}
	if err := s.files.CreateDir(target); err != nil {
		return &domain.FilesystemError{RepoID: repo.ID, Path: target, Err: err}
	}
	dest := filepath.Join(target, "comps.xml")
	if err := s.decomp.Decompress(compsPath, dest); err != nil {
		return fmt.Errorf("failed to save comps.xml for repository %s: %w", repo.ID, err)
	}
	s.logger.Info("comps.xml for repository %s saved", repo.ID)
	return nil
}
