package domain

// Repository represents a remote package repository to mirror
type Repository struct {
	ID         string
	BaseURL    string
	Enabled    bool
	Source     bool
	CacheDir   string
	PkgDir     string
	SourceRepo string
}

// Package represents a single package published by a repository.
// Packages are immutable value records for the duration of a sync run.
type Package struct {
	Repo     Repository
	Name     string
	Epoch    string
	Version  string
	Release  string
	Arch     string
	Location string
	Size     int64
	Local    bool
}

// Basename returns the file name component of the package location.
func (p Package) Basename() string {
	loc := p.Location
	for i := len(loc) - 1; i >= 0; i-- {
		if loc[i] == '/' {
			return loc[i+1:]
		}
	}
	return loc
}

// SyncConfig represents the configuration for a sync run
type SyncConfig struct {
	Repositories     []Repository
	Arches           []string
	Delete           bool
	DownloadComps    bool
	DownloadMetadata bool
	NewestOnly       bool
	DownloadPath     string
	Source           bool
	RepoIDs          []string
}

// Payload pairs a package with the directory its file must land in.
// Each payload carries its own destination because packages from the
// same repository may live in different subdirectories.
type Payload struct {
	Package Package
	DestDir string
}

// DownloadPlan partitions a candidate set into packages that need a
// remote fetch and packages already available in a local cache.
type DownloadPlan struct {
	Remote []Package
	Local  []Package
}

// SyncResult represents the result of syncing one repository
type SyncResult struct {
	Repository Repository
	Downloaded int
	Copied     int
	Deleted    int
	Success    bool
	Error      error
}
