// Package photo normalizes raw image URL candidates scraped from detail
// pages: absolutize, filter to known photo hosts, canonicalize away
// resize segments, classify variants and pick a cover image.
package photo

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Variant is a photo's resolution/rendering class.
type Variant string

const (
	VariantLarge   Variant = "large"
	VariantThumb   Variant = "thumb"
	VariantDesktop Variant = "desktop"
	VariantOrig    Variant = "orig"
)

// variantPriority orders variants for list construction and cover pick.
var variantPriority = []Variant{VariantLarge, VariantDesktop, VariantOrig, VariantThumb}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// chromePaths are known non-listing asset paths (site chrome) to discard.
var chromePaths = []string{
	"/logo", "/app-store", "/appstore", "/google-play", "/banner",
	"/loading", "/placeholder", "/icons/", "/badge",
}

// placeholderMarkers flag lazy-load stand-ins that are never real photos.
var placeholderMarkers = []string{"blank.gif", "1x1", "spacer", "loading.gif"}

// reResizeSegment matches resize path segments such as /resize/640x480/
// or /thumb/200x150/.
var reResizeSegment = regexp.MustCompile(`/(?:resize|thumb)/\d+x\d+`)

// Normalizer filters and canonicalizes photo URL candidates.
type Normalizer struct {
	base        *url.URL
	hostPattern *regexp.Regexp
}

// NewNormalizer creates a Normalizer resolving candidates against baseURL
// and keeping only hosts matching hostPattern (nil keeps every host).
func NewNormalizer(baseURL string, hostPattern *regexp.Regexp) *Normalizer {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &Normalizer{base: base, hostPattern: hostPattern}
}

// Set is the normalized result: a deduplicated photo list in variant
// priority order plus the cover pick.
type Set struct {
	Photos []string
	Cover  string
}

// Normalize runs the full pipeline over raw candidate URLs. The output
// contains no duplicate canonical URLs and Cover, when non-empty, is
// always a member of Photos.
func (n *Normalizer) Normalize(candidates []string) Set {
	seen := make(map[string]bool)
	groups := make(map[Variant][]string)

	for _, raw := range candidates {
		u, ok := n.accept(raw)
		if !ok {
			continue
		}
		canonical := canonicalURL(u)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		v := classifyVariant(u)
		groups[v] = append(groups[v], canonical)
	}

	var set Set
	for _, v := range variantPriority {
		set.Photos = append(set.Photos, groups[v]...)
	}
	if len(set.Photos) > 0 {
		set.Cover = set.Photos[0]
	}
	return set
}

// accept resolves a candidate to an absolute URL and applies the host,
// extension and chrome-path gates.
func (n *Normalizer) accept(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "data:") {
		return nil, false
	}
	for _, marker := range placeholderMarkers {
		if strings.Contains(raw, marker) {
			return nil, false
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if !u.IsAbs() {
		if n.base == nil {
			return nil, false
		}
		u = n.base.ResolveReference(u)
	}

	if n.hostPattern != nil && !n.hostPattern.MatchString(u.Hostname()) {
		return nil, false
	}
	if !imageExtensions[strings.ToLower(path.Ext(u.Path))] {
		return nil, false
	}
	lowerPath := strings.ToLower(u.Path)
	for _, p := range chromePaths {
		if strings.Contains(lowerPath, p) {
			return nil, false
		}
	}
	return u, true
}

// canonicalURL strips resize segments so differently-sized renditions of
// one photo share a deduplication key.
func canonicalURL(u *url.URL) string {
	c := *u
	c.Path = reResizeSegment.ReplaceAllString(c.Path, "")
	c.RawQuery = u.RawQuery
	c.Fragment = ""
	return c.String()
}

// classifyVariant tags a URL by filename markers.
func classifyVariant(u *url.URL) Variant {
	name := strings.ToLower(path.Base(u.Path))
	switch {
	case strings.Contains(name, "large"):
		return VariantLarge
	case strings.Contains(name, "desktop"):
		return VariantDesktop
	case strings.Contains(name, "thumb") || strings.Contains(name, "small"):
		return VariantThumb
	default:
		return VariantOrig
	}
}
