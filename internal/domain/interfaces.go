package domain

import "context"

// Logger defines the logging interface
type Logger interface {
	Info(msg string, args ...interface{})
	Success(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// FileRepository handles file system operations
type FileRepository interface {
	CopyFile(src, dst string) error
	CreateDir(path string) error
	FileExists(path string) bool
	IsRegularFile(path string) bool
	ListDir(path string) ([]string, error)
	Remove(path string) error
}

// PackageIndex is the queryable catalog of packages a repository
// currently publishes, backed by the repository's metadata cache.
type PackageIndex interface {
	// Available returns every package the repository publishes.
	Available(repo Repository) ([]Package, error)
	// SelectRemote partitions candidates into packages that must be
	// fetched remotely and packages whose bytes are already present in
	// their repository's package cache.
	SelectRemote(candidates []Package) (remote, local []Package)
	// MaterializeMetadata replicates all raw metadata files under targetDir.
	MaterializeMetadata(repo Repository, targetDir string) error
	// CompsPath returns the cached comps descriptor for the repository,
	// or "" when the repository publishes none.
	CompsPath(repo Repository) (string, error)
}

// Transfer performs batched remote downloads. A single call handles
// many payloads and may parallelize internally; a failure on one
// payload must not stop attempts on the others.
type Transfer interface {
	BatchDownload(ctx context.Context, payloads []Payload) error
}

// Decompressor expands a possibly-compressed file to a destination path
type Decompressor interface {
	Decompress(src, dst string) error
}

// ConfigRepository loads repository definitions
type ConfigRepository interface {
	Load(path string) ([]Repository, error)
}

// RepoSyncService defines the main service interface
type RepoSyncService interface {
	Sync(ctx context.Context, config *SyncConfig) ([]SyncResult, error)
	ValidateConfig(config *SyncConfig) error
}
