package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

// TransferPlanner partitions a candidate set into remote fetches and
// local cache copies, then drives both.
type TransferPlanner struct {
	logger   domain.Logger
	files    domain.FileRepository
	index    domain.PackageIndex
	transfer domain.Transfer
}

// NewTransferPlanner creates a new transfer planner
func NewTransferPlanner(
	logger domain.Logger,
	files domain.FileRepository,
	index domain.PackageIndex,
	transfer domain.Transfer,
) *TransferPlanner {
	return &TransferPlanner{
		logger:   logger,
		files:    files,
		index:    index,
		transfer: transfer,
	}
}

// Plan asks the package index which candidates are already
// byte-available in a local cache and which need a network fetch.
func (t *TransferPlanner) Plan(candidates []domain.Package) domain.DownloadPlan {
	remote, local := t.index.SelectRemote(candidates)
	for i := range local {
		local[i].Local = true
	}
	return domain.DownloadPlan{Remote: remote, Local: local}
}

// Sync executes a download plan for one repository. It returns the
// result counters and the first fatal error. A failure on one package
// does not stop attempts on its siblings; every destination is
// validated against the repository target before any write.
func (t *TransferPlanner) Sync(ctx context.Context, repo domain.Repository, plan domain.DownloadPlan, paths *PathResolver) (downloaded, copied int, err error) {
	if len(plan.Remote) > 0 {
		downloaded, err = t.downloadRemote(ctx, repo, plan.Remote, paths)
		if err != nil {
			return downloaded, 0, err
		}
	}
	if len(plan.Local) > 0 {
		copied, err = t.copyLocal(repo, plan.Local, paths)
	}
	return downloaded, copied, err
}

// downloadRemote submits one batched download for every remote package,
// giving the transfer layer an explicit destination directory per
// payload: packages from the same repository may land in different
// subdirectories depending on their location field.
func (t *TransferPlanner) downloadRemote(ctx context.Context, repo domain.Repository, pkgs []domain.Package, paths *PathResolver) (int, error) {
	payloads := make([]domain.Payload, 0, len(pkgs))
	for _, pkg := range pkgs {
		dest, err := paths.PackageDestination(pkg)
		if err != nil {
			return 0, err
		}
		destDir := filepath.Dir(dest)
		if err := t.files.CreateDir(destDir); err != nil {
			return 0, &domain.FilesystemError{RepoID: repo.ID, Path: destDir, Err: err}
		}
		payloads = append(payloads, domain.Payload{Package: pkg, DestDir: destDir})
	}

	t.logger.Info("Downloading %d package(s) for repository %s...", len(payloads), repo.ID)
	if err := t.transfer.BatchDownload(ctx, payloads); err != nil {
		return 0, &domain.TransferError{RepoID: repo.ID, Err: err}
	}
	return len(payloads), nil
}

// copyLocal materializes packages already cached by their repository
// with a plain file copy, verbatim.
func (t *TransferPlanner) copyLocal(repo domain.Repository, pkgs []domain.Package, paths *PathResolver) (int, error) {
	var firstErr error
	copied := 0
	for _, pkg := range pkgs {
		src := filepath.Join(pkg.Repo.PkgDir, strings.TrimLeft(pkg.Location, "/"))
		dest, err := paths.PackageDestination(pkg)
		if err != nil {
			t.logger.Error("Skipping %s: %v", pkg.Basename(), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		destDir := filepath.Dir(dest)
		if err := t.files.CreateDir(destDir); err != nil {
			fsErr := &domain.FilesystemError{RepoID: repo.ID, Path: destDir, Err: err}
			t.logger.Error("Failed to copy %s: %v", pkg.Basename(), fsErr)
			if firstErr == nil {
				firstErr = fsErr
			}
			continue
		}
		if err := t.files.CopyFile(src, dest); err != nil {
			fsErr := &domain.FilesystemError{RepoID: repo.ID, Path: dest, Err: err}
			t.logger.Error("Failed to copy %s: %v", pkg.Basename(), fsErr)
			if firstErr == nil {
				firstErr = fsErr
			}
			continue
		}
		copied++
	}
	if firstErr != nil {
		return copied, fmt.Errorf("copied %d of %d cached package(s): %w", copied, len(pkgs), firstErr)
	}
	return copied, nil
}
