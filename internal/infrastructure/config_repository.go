package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Francouer/repo-sync/internal/domain"
	"gopkg.in/yaml.v3"
)

type ConfigRepositoryImpl struct {
	logger domain.Logger
}

// ReposConfig represents the structure of repos.yaml
type ReposConfig struct {
	Repos []struct {
		ID         string `yaml:"id"`
		BaseURL    string `yaml:"baseurl"`
		Enabled    *bool  `yaml:"enabled,omitempty"`
		Source     bool   `yaml:"source,omitempty"`
		CacheDir   string `yaml:"cachedir"`
		PkgDir     string `yaml:"pkgdir,omitempty"`
		SourceRepo string `yaml:"source_repo,omitempty"`
	} `yaml:"repos"`
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(logger domain.Logger) domain.ConfigRepository {
	return &ConfigRepositoryImpl{
		logger: logger,
	}
}

// Load reads repository definitions from a YAML file. Repositories
// default to enabled; pkgdir defaults to <cachedir>/packages.
func (c *ConfigRepositoryImpl) Load(path string) ([]domain.Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ReposConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(config.Repos) == 0 {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("no repositories defined in %s", path)}
	}

	seen := make(map[string]bool, len(config.Repos))
	repositories := make([]domain.Repository, 0, len(config.Repos))
	for _, entry := range config.Repos {
		if entry.ID == "" {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("repository with empty id in %s", path)}
		}
		if seen[entry.ID] {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("duplicate repository id '%s' in %s", entry.ID, path)}
		}
		seen[entry.ID] = true

		enabled := true
		if entry.Enabled != nil {
			enabled = *entry.Enabled
		}
		pkgdir := entry.PkgDir
		if pkgdir == "" && entry.CacheDir != "" {
			pkgdir = filepath.Join(entry.CacheDir, "packages")
		}

		repositories = append(repositories, domain.Repository{
			ID:         entry.ID,
			BaseURL:    entry.BaseURL,
			Enabled:    enabled,
			Source:     entry.Source,
			CacheDir:   entry.CacheDir,
			PkgDir:     pkgdir,
			SourceRepo: entry.SourceRepo,
		})
	}

	return repositories, nil
}
