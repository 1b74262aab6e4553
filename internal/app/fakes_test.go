package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

type testLogger struct {
	lines []string
}

func (l *testLogger) logf(level, msg string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *testLogger) Info(msg string, args ...interface{})    { l.logf("INFO", msg, args...) }
func (l *testLogger) Success(msg string, args ...interface{}) { l.logf("SUCCESS", msg, args...) }
func (l *testLogger) Warning(msg string, args ...interface{}) { l.logf("WARNING", msg, args...) }
func (l *testLogger) Error(msg string, args ...interface{})   { l.logf("ERROR", msg, args...) }
func (l *testLogger) Debug(msg string, args ...interface{})   { l.logf("DEBUG", msg, args...) }

func (l *testLogger) contains(fragment string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}

// fakeIndex serves a canned package list per repository and partitions
// candidates by whether their file is present in the repository's
// package cache, like the real index does.
type fakeIndex struct {
	available   map[string][]domain.Package
	availErr    error
	compsPath   string
	compsErr    error
	metadataErr error
}

func (f *fakeIndex) Available(repo domain.Repository) ([]domain.Package, error) {
	if f.availErr != nil {
		return nil, f.availErr
	}
	return f.available[repo.ID], nil
}

func (f *fakeIndex) SelectRemote(candidates []domain.Package) (remote, local []domain.Package) {
	for _, pkg := range candidates {
		cached := filepath.Join(pkg.Repo.PkgDir, strings.TrimLeft(pkg.Location, "/"))
		if info, err := os.Stat(cached); err == nil && info.Mode().IsRegular() {
			local = append(local, pkg)
			continue
		}
		remote = append(remote, pkg)
	}
	return remote, local
}

func (f *fakeIndex) MaterializeMetadata(repo domain.Repository, targetDir string) error {
	if f.metadataErr != nil {
		return f.metadataErr
	}
	return os.WriteFile(filepath.Join(targetDir, "repomd.xml"), []byte("<repomd/>"), 0o644)
}

func (f *fakeIndex) CompsPath(repo domain.Repository) (string, error) {
	return f.compsPath, f.compsErr
}

// fakeTransfer materializes downloads as files whose content names the
// package, and fails the payloads listed in failOn without aborting
// the rest of the batch.
type fakeTransfer struct {
	calls    int
	payloads []domain.Payload
	failOn   map[string]bool
}

func (f *fakeTransfer) BatchDownload(ctx context.Context, payloads []domain.Payload) error {
	f.calls++
	var failed []string
	for _, payload := range payloads {
		f.payloads = append(f.payloads, payload)
		name := payload.Package.Basename()
		if f.failOn[name] {
			failed = append(failed, name)
			continue
		}
		content := []byte("remote:" + name)
		if err := os.WriteFile(filepath.Join(payload.DestDir, name), content, 0o644); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to download %d of %d package(s): %s",
			len(failed), len(payloads), strings.Join(failed, ", "))
	}
	return nil
}
