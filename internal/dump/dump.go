// Package dump writes raw HTML snapshots for offline markup-drift
// diagnosis. The writer owns its per-language counters; there is no
// global mutable state.
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/logger"
)

// Writer snapshots list pages and the first N detail pages per language.
type Writer struct {
	dir         string
	detailLimit int

	mu           sync.Mutex
	detailCounts map[listing.Lang]int
}

// New creates a dump writer rooted at dir.
func New(dir string, detailLimit int) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{
		dir:          dir,
		detailLimit:  detailLimit,
		detailCounts: make(map[listing.Lang]int),
	}, nil
}

// ListPage snapshots one list page.
func (w *Writer) ListPage(lang listing.Lang, page int, html string) {
	w.write(fmt.Sprintf("list-%s-page%d.html", lang, page), html)
}

// DetailPage snapshots a detail page until the per-language cap is hit.
// Safe for concurrent use from fetch tasks.
func (w *Writer) DetailPage(lang listing.Lang, id, html string) {
	w.mu.Lock()
	if w.detailCounts[lang] >= w.detailLimit {
		w.mu.Unlock()
		return
	}
	w.detailCounts[lang]++
	w.mu.Unlock()

	w.write(fmt.Sprintf("detail-%s-%s.html", lang, id), html)
}

func (w *Writer) write(name, html string) {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		logger.Warn("failed to write debug dump", "path", path, "error", err)
	}
}
