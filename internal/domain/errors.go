package domain

import "fmt"

// ConfigurationError aborts the run before any repository is touched
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// PathEscapeError reports a package destination that resolved outside
// its repository's target directory. The package must not be written.
type PathEscapeError struct {
	RepoID      string
	Destination string
	Target      string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("download target '%s' is outside of download path '%s'", e.Destination, e.Target)
}

// TransferError reports a remote fetch failure for one repository
type TransferError struct {
	RepoID string
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("repository %s: download failed: %v", e.RepoID, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a local copy or directory-creation failure
type FilesystemError struct {
	RepoID string
	Path   string
	Err    error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("repository %s: %s: %v", e.RepoID, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
