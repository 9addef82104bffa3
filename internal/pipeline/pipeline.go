// Package pipeline wires the crawl, fetch, parse, merge and store phases
// into one resumable run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/parkcrawl/parkcrawl/internal/crawl"
	"github.com/parkcrawl/parkcrawl/internal/dump"
	"github.com/parkcrawl/parkcrawl/internal/fetcher"
	"github.com/parkcrawl/parkcrawl/internal/images"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/logger"
	"github.com/parkcrawl/parkcrawl/internal/merge"
	"github.com/parkcrawl/parkcrawl/internal/parse"
	"github.com/parkcrawl/parkcrawl/internal/pool"
	"github.com/parkcrawl/parkcrawl/internal/site"
	"github.com/parkcrawl/parkcrawl/internal/store"
)

// Config is the full pipeline configuration surface.
type Config struct {
	Lang            listing.Lang `validate:"oneof=en zh"`
	DualLang        bool
	MaxListings     int `validate:"min=0"`
	PageDelay       time.Duration
	Concurrency     int    `validate:"min=1"`
	OutputPath      string `validate:"required"`
	CSVPath         string
	YAMLPath        string
	Resume          bool
	DownloadImages  bool
	ImageDir        string
	DumpHTML        bool
	DumpDir         string
	DumpDetailLimit int

	Site    site.Config
	Fetcher fetcher.Fetcher `validate:"required"`
}

// Stats summarizes one run.
type Stats struct {
	Crawled int // distinct listings seen on list pages
	Skipped int // already fetched in a prior run
	Fetched int // detail fetch + parse succeeded this run
	Failed  int // detail fetch failed this run
	Total   int // records in the written dataset
}

var validate = validator.New()

// Run executes the pipeline once. Only configuration errors and a failed
// final write are fatal; every per-listing failure is recorded in the
// dataset instead.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	var stats Stats

	if err := validate.Struct(cfg); err != nil {
		return stats, fmt.Errorf("invalid config: %w", err)
	}

	dataset := loadDataset(cfg)
	alreadyFetched := store.FetchedIDs(dataset)

	var dw *dump.Writer
	if cfg.DumpHTML {
		var err error
		dw, err = dump.New(cfg.DumpDir, cfg.DumpDetailLimit)
		if err != nil {
			logger.Warn("debug dumps disabled", "dir", cfg.DumpDir, "error", err)
			dw = nil
		}
	}
	var dumpList crawl.DumpFunc
	if dw != nil {
		dumpList = dw.ListPage
	}

	crawler := crawl.New(cfg.Fetcher, crawl.Config{
		Lang:        cfg.Lang,
		MaxListings: cfg.MaxListings,
		Delay:       cfg.PageDelay,
		Site:        cfg.Site,
	}, dumpList)
	summaries := crawler.Run(ctx)
	stats.Crawled = len(summaries)

	var work []listing.Summary
	for _, s := range summaries {
		if alreadyFetched[s.ListingID] {
			stats.Skipped++
			continue
		}
		work = append(work, s)
	}
	logger.Info("detail fetch phase",
		"new", len(work), "skipped", stats.Skipped, "concurrency", cfg.Concurrency)

	stride := 1
	if cfg.DualLang {
		stride = 2
	}
	tasks := make([]pool.Task[*listing.Detail], len(work)*stride)
	for i, s := range work {
		tasks[i*stride] = detailTask(cfg, dw, cfg.Lang, s.ListingID, s.DetailURL)
		if cfg.DualLang {
			altURL := cfg.Site.AltLangURL(s.DetailURL, cfg.Lang)
			tasks[i*stride+1] = detailTask(cfg, dw, cfg.Lang.Other(), s.ListingID, altURL)
		}
	}
	results := pool.Run(ctx, cfg.Concurrency, tasks)

	for i, s := range work {
		primary := results[i*stride]
		var alternate pool.Result[*listing.Detail]
		if cfg.DualLang {
			alternate = results[i*stride+1]
		}

		var en, zh *listing.Detail
		if cfg.Lang == listing.LangEN {
			en, zh = primary.Value, alternate.Value
		} else {
			zh, en = primary.Value, alternate.Value
		}

		fetchErr := primary.Err
		if fetchErr == nil {
			fetchErr = alternate.Err
		}

		if fetchErr != nil {
			stats.Failed++
			if prior, ok := dataset[s.ListingID]; ok {
				// Keep the previously known fields so a resumed run can
				// retry without losing data.
				kept := *prior
				kept.DetailFetched = false
				kept.Error = fetchErr.Error()
				dataset[s.ListingID] = &kept
				continue
			}
		} else {
			stats.Fetched++
		}

		m := merge.Merge(s, en, zh, cfg.Site.PhotoHostPattern)
		m.DetailFetched = fetchErr == nil
		if fetchErr != nil {
			m.Error = fetchErr.Error()
		}
		dataset[s.ListingID] = &m

		if cfg.DownloadImages && fetchErr == nil && len(m.Photos) > 0 {
			images.Download(ctx, cfg.Fetcher, cfg.ImageDir, s.ListingID, m.Photos, cfg.Concurrency)
		}
	}

	stats.Total = len(dataset)

	if err := store.Save(cfg.OutputPath, dataset); err != nil {
		return stats, fmt.Errorf("failed to write dataset: %w", err)
	}
	if cfg.CSVPath != "" {
		if err := store.SaveCSV(cfg.CSVPath, dataset); err != nil {
			return stats, fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	if cfg.YAMLPath != "" {
		if err := store.SaveYAML(cfg.YAMLPath, dataset); err != nil {
			return stats, fmt.Errorf("failed to write YAML: %w", err)
		}
	}

	logger.Info("run complete",
		"crawled", stats.Crawled,
		"skipped", stats.Skipped,
		"fetched", stats.Fetched,
		"failed", stats.Failed,
		"total", stats.Total)
	return stats, nil
}

// detailTask builds one bounded-fetch task for a (listing, language)
// detail page.
func detailTask(cfg Config, dw *dump.Writer, lang listing.Lang, id, url string) pool.Task[*listing.Detail] {
	return func(ctx context.Context) (*listing.Detail, error) {
		page, err := cfg.Fetcher.Fetch(ctx, url, fetcher.Options{
			AcceptLanguage: site.AcceptLanguage(lang),
		})
		if err != nil {
			return nil, fmt.Errorf("detail fetch %s (%s): %w", id, lang, err)
		}
		if dw != nil {
			dw.DetailPage(lang, id, page.HTML)
		}
		d := parse.Detail(page.HTML, lang, url, cfg.Site)
		return &d, nil
	}
}

// loadDataset loads the prior output in resume mode, degrading to an
// empty dataset on any read problem.
func loadDataset(cfg Config) map[string]*listing.Merged {
	if !cfg.Resume {
		return make(map[string]*listing.Merged)
	}
	dataset, err := store.Load(cfg.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no prior dataset", "path", cfg.OutputPath)
		} else {
			logger.Warn("could not load prior dataset, starting empty",
				"path", cfg.OutputPath, "error", err)
		}
		return make(map[string]*listing.Merged)
	}
	logger.Info("resuming from prior dataset",
		"path", cfg.OutputPath, "records", len(dataset))
	return dataset
}
