package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Francouer/repo-sync/internal/app"
	"github.com/Francouer/repo-sync/internal/infrastructure"
	interfaces "github.com/Francouer/repo-sync/internal/interface"
)

func main() {
	// Create context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize dependencies
	logger := infrastructure.NewColorLogger()
	fileRepo := infrastructure.NewFileRepository(logger)
	configRepo := infrastructure.NewConfigRepository(logger)
	index := infrastructure.NewXMLIndex(logger, fileRepo)
	transfer := infrastructure.NewHTTPTransfer(logger)
	decompressor := infrastructure.NewFileDecompressor()

	// Initialize application service
	syncService := app.NewRepoSyncService(logger, fileRepo, index, transfer, decompressor)

	// Initialize CLI handler
	cliHandler := interfaces.NewCLIHandler(syncService, configRepo, logger)

	// Create root command and execute
	rootCmd := cliHandler.CreateRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Application failed: %v", err)
		os.Exit(1)
	}
}
