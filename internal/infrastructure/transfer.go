package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Francouer/repo-sync/internal/domain"
)

const defaultWorkers = 4

// HTTPTransfer implements domain.Transfer with a bounded pool of
// concurrent downloads. Parallelism stays inside one BatchDownload
// call; callers never observe concurrent state.
type HTTPTransfer struct {
	logger  domain.Logger
	client  *http.Client
	workers int
}

// NewHTTPTransfer creates a new HTTP transfer layer
func NewHTTPTransfer(logger domain.Logger) domain.Transfer {
	return &HTTPTransfer{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Minute,
		},
		workers: defaultWorkers,
	}
}

// BatchDownload fetches every payload into its own destination
// directory. A failed payload is logged and reported but does not stop
// the rest of the batch.
func (t *HTTPTransfer) BatchDownload(ctx context.Context, payloads []domain.Payload) error {
	if len(payloads) == 0 {
		return nil
	}

	jobs := make(chan domain.Payload)
	var mu sync.Mutex
	var failed []string

	var wg sync.WaitGroup
	workers := t.workers
	if workers > len(payloads) {
		workers = len(payloads)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for payload := range jobs {
				if err := t.download(ctx, payload); err != nil {
					t.logger.Error("Failed to download %s: %v", payload.Package.Basename(), err)
					mu.Lock()
					failed = append(failed, payload.Package.Basename())
					mu.Unlock()
					continue
				}
				t.logger.Debug("Downloaded %s", payload.Package.Basename())
			}
		}()
	}

	for _, payload := range payloads {
		jobs <- payload
	}
	close(jobs)
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("failed to download %d of %d package(s): %s",
			len(failed), len(payloads), strings.Join(failed, ", "))
	}
	return nil
}

// download writes to a temporary file in the destination directory and
// renames on success, so an interrupted fetch never leaves a partial
// package file under its final name.
func (t *HTTPTransfer) download(ctx context.Context, payload domain.Payload) error {
	pkg := payload.Package
	url := strings.TrimRight(pkg.Repo.BaseURL, "/") + "/" + strings.TrimLeft(pkg.Location, "/")
	dest := filepath.Join(payload.DestDir, pkg.Basename())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	tmp, err := os.CreateTemp(payload.DestDir, pkg.Basename()+".*.part")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
