// Package images optionally mirrors listing photos to local disk, one
// subdirectory per listing.
package images

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/parkcrawl/parkcrawl/internal/fetcher"
	"github.com/parkcrawl/parkcrawl/internal/logger"
	"github.com/parkcrawl/parkcrawl/internal/pool"
)

// Download fetches every photo of one listing into dir/<id>/ through the
// bounded runner. Individual failures are logged and isolated; the
// listing's other photos still download.
func Download(ctx context.Context, f fetcher.Fetcher, dir, id string, photos []string, concurrency int) {
	target := filepath.Join(dir, id)
	if err := os.MkdirAll(target, 0o755); err != nil {
		logger.Warn("failed to create image directory", "dir", target, "error", err)
		return
	}

	tasks := make([]pool.Task[string], 0, len(photos))
	for i, photoURL := range photos {
		i, photoURL := i, photoURL
		tasks = append(tasks, func(ctx context.Context) (string, error) {
			page, err := f.Fetch(ctx, photoURL, fetcher.Options{})
			if err != nil {
				return "", err
			}
			// Index prefix keeps photos distinct when different URLs
			// share a basename.
			name := fmt.Sprintf("%02d-%s", i, fileName(photoURL))
			dest := filepath.Join(target, name)
			if err := os.WriteFile(dest, []byte(page.HTML), 0o644); err != nil {
				return "", err
			}
			return dest, nil
		})
	}

	results := pool.Run(ctx, concurrency, tasks)
	for i, r := range results {
		if r.Err != nil {
			logger.Debug("image download failed", "listing", id, "url", photos[i], "error", r.Err)
		}
	}
}

func fileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return fmt.Sprintf("photo-%x", len(rawURL))
	}
	return path.Base(u.Path)
}
