// Package crawl walks list pages sequentially and accumulates distinct
// listing summaries. This phase is single-threaded by design; politeness
// comes from an explicit inter-page delay.
package crawl

import (
	"context"
	"time"

	"github.com/parkcrawl/parkcrawl/internal/fetcher"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/logger"
	"github.com/parkcrawl/parkcrawl/internal/parse"
	"github.com/parkcrawl/parkcrawl/internal/site"
)

// hardPageCeiling bounds worst-case runtime against unexpected server
// behavior, regardless of every other stop signal.
const hardPageCeiling = 50

// Config controls one crawl phase.
type Config struct {
	Lang        listing.Lang
	MaxListings int           // 0 = unbounded
	Delay       time.Duration // between list-page fetches
	Site        site.Config
}

// DumpFunc receives each fetched list page for debug snapshots; nil
// disables dumping.
type DumpFunc func(lang listing.Lang, page int, html string)

// Crawler collects listing summaries from paginated list pages.
type Crawler struct {
	fetcher fetcher.Fetcher
	config  Config
	dump    DumpFunc
}

// New creates a Crawler.
func New(f fetcher.Fetcher, cfg Config, dump DumpFunc) *Crawler {
	return &Crawler{fetcher: f, config: cfg, dump: dump}
}

// Run walks pages until a stop condition fires and returns the distinct
// summaries in first-seen order. A failed list-page fetch ends pagination
// early; it is not an error.
func (c *Crawler) Run(ctx context.Context) []listing.Summary {
	var collected []listing.Summary
	seen := make(map[string]bool)
	siteTotal := 0 // 0 = unknown, treated as unbounded

	for page := 1; page <= hardPageCeiling; page++ {
		pageURL := c.config.Site.ListPageURL(c.config.Lang, page)

		if page > 1 && c.config.Delay > 0 {
			select {
			case <-ctx.Done():
				return collected
			case <-time.After(c.config.Delay):
			}
		}

		fetched, err := c.fetcher.Fetch(ctx, pageURL, fetcher.Options{
			AcceptLanguage: site.AcceptLanguage(c.config.Lang),
		})
		if err != nil {
			logger.Info("list page fetch failed, ending pagination",
				"page", page, "url", pageURL, "error", err)
			break
		}
		if c.dump != nil {
			c.dump(c.config.Lang, page, fetched.HTML)
		}

		if page == 1 {
			if total, ok := parse.TotalCount(fetched.HTML); ok {
				siteTotal = total
				logger.Debug("site-reported total", "total", total)
			}
		}

		cards := parse.Cards(fetched.HTML, c.config.Lang, pageURL, c.config.Site)
		if len(cards) == 0 {
			if len(fetched.HTML) > 0 {
				logger.Warn("no cards parsed from non-empty page, possible markup drift",
					"page", page, "url", pageURL)
			}
			break
		}

		added := 0
		for _, s := range cards {
			if seen[s.ListingID] {
				continue
			}
			seen[s.ListingID] = true
			collected = append(collected, s)
			added++
			if c.reachedLimit(len(collected), siteTotal) {
				break
			}
		}
		logger.Info("list page crawled",
			"page", page, "cards", len(cards), "new", added, "total", len(collected))

		if c.reachedLimit(len(collected), siteTotal) {
			break
		}
	}

	return collected
}

func (c *Crawler) reachedLimit(count, siteTotal int) bool {
	if c.config.MaxListings > 0 && count >= c.config.MaxListings {
		return true
	}
	if siteTotal > 0 && count >= siteTotal {
		return true
	}
	return false
}
