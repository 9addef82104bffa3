// Package store persists the merged dataset: a JSON array keyed by
// listing id, loaded at start in resume mode and written once per run
// via temp-file-then-rename so a crash never leaves a partial file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

// Load reads a prior run's output into a map keyed by listing id. A
// missing or unreadable file is the caller's signal to start empty.
func Load(path string) (map[string]*listing.Merged, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []*listing.Merged
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrupt dataset %s: %w", path, err)
	}
	out := make(map[string]*listing.Merged, len(records))
	for _, r := range records {
		if r != nil && r.ListingID != "" {
			out[r.ListingID] = r
		}
	}
	return out, nil
}

// FetchedIDs returns the ids whose detail fetch already succeeded; the
// crawl and fetch phases skip detail work for these.
func FetchedIDs(dataset map[string]*listing.Merged) map[string]bool {
	out := make(map[string]bool, len(dataset))
	for id, r := range dataset {
		if r.DetailFetched {
			out[id] = true
		}
	}
	return out
}

// Sorted flattens the dataset in stable listing-id order, numeric ids
// first, so repeat runs serialize byte-identically.
func Sorted(dataset map[string]*listing.Merged) []*listing.Merged {
	out := make([]*listing.Merged, 0, len(dataset))
	for _, r := range dataset {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.ParseInt(out[i].ListingID, 10, 64)
		b, errB := strconv.ParseInt(out[j].ListingID, 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return out[i].ListingID < out[j].ListingID
	})
	return out
}

// Save writes the dataset as a pretty-printed JSON array, atomically.
func Save(path string, dataset map[string]*listing.Merged) error {
	records := Sorted(dataset)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	data = append(data, '\n')
	return atomicWrite(path, data)
}

// atomicWrite writes to a temp file in the destination directory then
// renames it over the target.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
