// Package site describes the target site's URL conventions. Everything
// the pipeline knows about the source server lives here so fixture tests
// can point it at a local server.
package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

// Config holds the site's URL and naming conventions.
type Config struct {
	// ListRoot maps a language to its list-page root URL (page 1).
	ListRoot map[listing.Lang]string

	// PageSuffix formats the path suffix appended to the root for
	// pages >= 2, e.g. "/page-%d".
	PageSuffix string

	// DetailIDPattern extracts the numeric listing id from a detail URL.
	// The first capture group is the id.
	DetailIDPattern *regexp.Regexp

	// LangSegment is the path segment present on primary-language URLs
	// and absent on the other, e.g. "/en".
	LangSegment string

	// LangSegmentLang is the language whose URLs carry LangSegment.
	LangSegmentLang listing.Lang

	// PhotoHostPattern matches hostnames that serve listing photos.
	PhotoHostPattern *regexp.Regexp

	// BrandName is the site's own name, excluded when picking agency names.
	BrandName string

	UserAgent string
}

// Default returns the production site configuration.
func Default() Config {
	return Config{
		ListRoot: map[listing.Lang]string{
			listing.LangEN: "https://www.28hse.com/en/carpark",
			listing.LangZH: "https://www.28hse.com/carpark",
		},
		PageSuffix:       "/page-%d",
		DetailIDPattern:  regexp.MustCompile(`detail-(\d+)`),
		LangSegment:      "/en",
		LangSegmentLang:  listing.LangEN,
		PhotoHostPattern: regexp.MustCompile(`(?i)^(?:pic|img|photos?)\d*\.28hse\.com$`),
		BrandName:        "28Hse",
		UserAgent:        "parkcrawl/1.0 (+https://github.com/parkcrawl/parkcrawl; ops@parkcrawl.dev)",
	}
}

// ListPageURL returns the list-page URL for the given language and
// 1-based page number.
func (c Config) ListPageURL(lang listing.Lang, page int) string {
	root := c.ListRoot[lang]
	if page <= 1 {
		return root
	}
	return root + fmt.Sprintf(c.PageSuffix, page)
}

// ListingID extracts the numeric listing id from a URL, or "" if the
// URL does not match the detail pattern.
func (c Config) ListingID(rawURL string) string {
	m := c.DetailIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// AltLangURL derives the alternate-language detail URL by toggling the
// language path segment. The derived URL is assumed, not verified, to
// serve the other language; fixture tests cover the convention.
func (c Config) AltLangURL(detailURL string, from listing.Lang) string {
	marked := strings.Contains(detailURL, c.LangSegment+"/")
	if from == c.LangSegmentLang {
		if marked {
			return strings.Replace(detailURL, c.LangSegment+"/", "/", 1)
		}
		return detailURL
	}
	if marked {
		return detailURL
	}
	// Insert the segment after the scheme://host part.
	idx := strings.Index(detailURL, "://")
	if idx < 0 {
		return detailURL
	}
	slash := strings.Index(detailURL[idx+3:], "/")
	if slash < 0 {
		return detailURL + c.LangSegment
	}
	pos := idx + 3 + slash
	return detailURL[:pos] + c.LangSegment + detailURL[pos:]
}

// AcceptLanguage returns the Accept-Language header value for a language.
func AcceptLanguage(lang listing.Lang) string {
	if lang == listing.LangZH {
		return "zh-HK,zh;q=0.9,en;q=0.5"
	}
	return "en-US,en;q=0.9,zh-HK;q=0.5"
}
