package interfaces

import (
	"context"
	"fmt"

	"github.com/Francouer/repo-sync/internal/domain"
	"github.com/spf13/cobra"
)

type CLIHandler struct {
	service domain.RepoSyncService
	configs domain.ConfigRepository
	logger  domain.Logger
}

// NewCLIHandler creates a new CLI handler
func NewCLIHandler(service domain.RepoSyncService, configs domain.ConfigRepository, logger domain.Logger) *CLIHandler {
	return &CLIHandler{
		service: service,
		configs: configs,
		logger:  logger,
	}
}

// CreateRootCommand creates the root cobra command
func (c *CLIHandler) CreateRootCommand() *cobra.Command {
	var config domain.SyncConfig
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "reposync",
		Short:         "Download all packages from remote repositories",
		Long:          `Reposync mirrors the package set of configured remote repositories onto local storage, optionally replicating repository metadata and comps.xml and deleting local packages the repositories no longer publish.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.handleSync(cmd.Context(), &config, configPath)
		},
	}

	c.addFlags(rootCmd, &config, &configPath)
	return rootCmd
}

func (c *CLIHandler) addFlags(cmd *cobra.Command, config *domain.SyncConfig, configPath *string) {
	cmd.Flags().StringSliceVarP(&config.Arches, "arch", "a", nil, "download only packages for this ARCH")
	cmd.Flags().BoolVar(&config.Delete, "delete", false, "delete local packages no longer present in repository")
	cmd.Flags().BoolVarP(&config.DownloadComps, "downloadcomps", "m", false, "also download comps.xml")
	cmd.Flags().BoolVar(&config.DownloadMetadata, "download-metadata", false, "download all the metadata")
	cmd.Flags().BoolVarP(&config.NewestOnly, "newest-only", "n", false, "download only newest packages per-repo")
	cmd.Flags().StringVarP(&config.DownloadPath, "download-path", "p", "./", "where to store downloaded repositories")
	cmd.Flags().BoolVar(&config.Source, "source", false, "operate on source packages")
	cmd.Flags().StringArrayVar(&config.RepoIDs, "repo", nil, "sync only the named repository (repeatable)")
	cmd.Flags().StringVarP(configPath, "config", "c", "repos.yaml", "path to the repository configuration file")
}

func (c *CLIHandler) handleSync(ctx context.Context, config *domain.SyncConfig, configPath string) error {
	repositories, err := c.configs.Load(configPath)
	if err != nil {
		return err
	}
	config.Repositories = repositories

	results, err := c.service.Sync(ctx, config)
	if err != nil {
		c.logger.Error("Sync failed: %v", err)
		return err
	}

	downloaded, copied, deleted, failed := 0, 0, 0, 0
	for _, result := range results {
		downloaded += result.Downloaded
		copied += result.Copied
		deleted += result.Deleted
		if !result.Success {
			failed++
		}
	}

	c.logger.Info("Sync completed: %d downloaded, %d copied, %d deleted across %d repository(ies)",
		downloaded, copied, deleted, len(results))
	if failed > 0 {
		return fmt.Errorf("%d repository(ies) failed to sync", failed)
	}
	return nil
}
