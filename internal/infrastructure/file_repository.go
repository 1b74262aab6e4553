package infrastructure

import (
	"fmt"
	"io"
	"os"

	"github.com/Francouer/repo-sync/internal/domain"
)

type FileRepositoryImpl struct {
	logger domain.Logger
}

// NewFileRepository creates a new file repository
func NewFileRepository(logger domain.Logger) domain.FileRepository {
	return &FileRepositoryImpl{
		logger: logger,
	}
}

func (f *FileRepositoryImpl) CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("failed to copy file from %s to %s: %w", src, dst, err)
	}

	return destFile.Sync()
}

func (f *FileRepositoryImpl) CreateDir(path string) error {
	if path == "" {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

func (f *FileRepositoryImpl) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *FileRepositoryImpl) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ListDir returns the names of the immediate children of a directory.
func (f *FileRepositoryImpl) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (f *FileRepositoryImpl) Remove(path string) error {
	return os.Remove(path)
}
