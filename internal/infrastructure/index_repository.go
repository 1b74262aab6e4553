package infrastructure

import (
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

// XMLIndex implements domain.PackageIndex on top of a repository's
// cached repodata (repomd.xml plus the primary metadata it points at).
type XMLIndex struct {
	logger domain.Logger
	files  domain.FileRepository
}

// Repomd represents repodata/repomd.xml
type Repomd struct {
	Data []RepomdData `xml:"data"`
}

type RepomdData struct {
	Type     string   `xml:"type,attr"`
	Location Location `xml:"location"`
}

type Location struct {
	Href string `xml:"href,attr"`
}

// primaryMetadata represents the primary.xml package list
type primaryMetadata struct {
	Packages []primaryPackage `xml:"package"`
}

type primaryPackage struct {
	Name    string `xml:"name"`
	Arch    string `xml:"arch"`
	Version struct {
		Epoch string `xml:"epoch,attr"`
		Ver   string `xml:"ver,attr"`
		Rel   string `xml:"rel,attr"`
	} `xml:"version"`
	Size struct {
		Package int64 `xml:"package,attr"`
	} `xml:"size"`
	Location Location `xml:"location"`
}

// NewXMLIndex creates a new XML-backed package index
func NewXMLIndex(logger domain.Logger, files domain.FileRepository) domain.PackageIndex {
	return &XMLIndex{
		logger: logger,
		files:  files,
	}
}

func (x *XMLIndex) Available(repo domain.Repository) ([]domain.Package, error) {
	repomd, err := x.readRepomd(repo)
	if err != nil {
		return nil, err
	}

	primaryPath := x.metadataPath(repo, repomd, "primary")
	if primaryPath == "" {
		return nil, fmt.Errorf("repository %s publishes no primary metadata", repo.ID)
	}

	var metadata primaryMetadata
	if err := x.decodeXML(primaryPath, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse primary metadata for %s: %w", repo.ID, err)
	}

	packages := make([]domain.Package, 0, len(metadata.Packages))
	for _, entry := range metadata.Packages {
		packages = append(packages, domain.Package{
			Repo:     repo,
			Name:     entry.Name,
			Epoch:    entry.Version.Epoch,
			Version:  entry.Version.Ver,
			Release:  entry.Version.Rel,
			Arch:     entry.Arch,
			Location: entry.Location.Href,
			Size:     entry.Size.Package,
		})
	}
	x.logger.Debug("Repository %s publishes %d package(s)", repo.ID, len(packages))
	return packages, nil
}

// SelectRemote treats a candidate as locally available when a file of
// the expected size already sits in its repository's package cache.
func (x *XMLIndex) SelectRemote(candidates []domain.Package) (remote, local []domain.Package) {
	for _, pkg := range candidates {
		cached := filepath.Join(pkg.Repo.PkgDir, strings.TrimLeft(pkg.Location, "/"))
		info, err := os.Stat(cached)
		if err == nil && info.Mode().IsRegular() && info.Size() == pkg.Size {
			local = append(local, pkg)
			continue
		}
		remote = append(remote, pkg)
	}
	return remote, local
}

// MaterializeMetadata copies every cached repodata file into
// targetDir/repodata.
func (x *XMLIndex) MaterializeMetadata(repo domain.Repository, targetDir string) error {
	srcDir := filepath.Join(repo.CacheDir, "repodata")
	names, err := x.files.ListDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read metadata cache for %s: %w", repo.ID, err)
	}
	destDir := filepath.Join(targetDir, "repodata")
	if err := x.files.CreateDir(destDir); err != nil {
		return &domain.FilesystemError{RepoID: repo.ID, Path: destDir, Err: err}
	}
	for _, name := range names {
		src := filepath.Join(srcDir, name)
		if !x.files.IsRegularFile(src) {
			continue
		}
		if err := x.files.CopyFile(src, filepath.Join(destDir, name)); err != nil {
			return &domain.FilesystemError{RepoID: repo.ID, Path: src, Err: err}
		}
	}
	return nil
}

func (x *XMLIndex) CompsPath(repo domain.Repository) (string, error) {
	repomd, err := x.readRepomd(repo)
	if err != nil {
		return "", err
	}
	for _, dataType := range []string{"group_gz", "group"} {
		if path := x.metadataPath(repo, repomd, dataType); path != "" {
			return path, nil
		}
	}
	return "", nil
}

func (x *XMLIndex) readRepomd(repo domain.Repository) (*Repomd, error) {
	path := filepath.Join(repo.CacheDir, "repodata", "repomd.xml")
	var repomd Repomd
	if err := x.decodeXML(path, &repomd); err != nil {
		return nil, fmt.Errorf("failed to read repomd.xml for %s: %w", repo.ID, err)
	}
	return &repomd, nil
}

// metadataPath resolves a repomd data entry of the given type to a
// file in the repository's cache, or "" when absent.
func (x *XMLIndex) metadataPath(repo domain.Repository, repomd *Repomd, dataType string) string {
	for _, data := range repomd.Data {
		if data.Type != dataType || data.Location.Href == "" {
			continue
		}
		path := filepath.Join(repo.CacheDir, filepath.FromSlash(data.Location.Href))
		if x.files.FileExists(path) {
			return path
		}
	}
	return ""
}

// decodeXML parses an XML file, transparently gunzipping *.gz inputs.
func (x *XMLIndex) decodeXML(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	}
	return xml.NewDecoder(reader).Decode(v)
}
