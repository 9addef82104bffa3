package parse

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/parkcrawl/parkcrawl/internal/extract"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/site"
)

// cardSelectors are tried in order; list markup has drifted before, so
// the last resort is "parent of any detail anchor".
var cardSelectors = []string{
	"div.property-item",
	"div.listing-card",
	"li.search-item",
	"div.unit-item",
}

// locationLinkSelector finds the district/estate link list inside a card.
const locationLinkSelector = ".location a, .address a"

// Cards parses one list page into listing summaries. Cards without an
// extractable listing id are skipped.
func Cards(pageHTML string, lang listing.Lang, pageURL string, st site.Config) []listing.Summary {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil
	}
	base, _ := url.Parse(pageURL)

	cards := selectCards(doc, st)
	var out []listing.Summary
	cards.Each(func(_ int, card *goquery.Selection) {
		if s, ok := parseCard(card, lang, base, st); ok {
			out = append(out, s)
		}
	})
	return out
}

func selectCards(doc *goquery.Document, st site.Config) *goquery.Selection {
	for _, sel := range cardSelectors {
		if cards := doc.Find(sel); cards.Length() > 0 {
			return cards
		}
	}
	// Fallback: the parent of every detail-page anchor.
	return doc.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		return st.ListingID(href) != ""
	}).Parent()
}

func parseCard(card *goquery.Selection, lang listing.Lang, base *url.URL, st site.Config) (listing.Summary, bool) {
	flat := flattenText(card)

	id, detailURL := cardIdentity(card, base, st)
	if id == "" {
		return listing.Summary{}, false
	}

	s := listing.Summary{
		ListingID: id,
		Title:     cardTitle(card, flat),
		DetailURL: detailURL,
		Lang:      lang,
	}

	s.District, s.Estate = cardLocation(card, flat)

	priceText := compactText(card.Find(".price").First())
	if priceText == "" {
		priceText = flat
	}
	if p, ok := extract.Price(priceText); ok {
		s.PriceText = p.Raw
	}

	postedText := compactText(card.Find(".posted, .post-date").First())
	if postedText == "" {
		postedText = flat
	}
	if ago, ok := extract.PostedAgo(postedText); ok {
		s.PostedAgo = ago
	}

	tagText := compactText(card.Find(".tags, .tag").First())
	s.Types = extract.Categories(tagText + "\n" + flat)

	return s, true
}

// cardIdentity extracts the listing id and detail URL: data-id attribute
// first, then the first detail anchor, then the card's own href when the
// card is itself a link.
func cardIdentity(card *goquery.Selection, base *url.URL, st site.Config) (id, detailURL string) {
	var anchor string
	card.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if st.ListingID(href) != "" {
			anchor = href
			return false
		}
		return true
	})
	if anchor == "" {
		if href, ok := card.Attr("href"); ok && st.ListingID(href) != "" {
			anchor = href
		}
	}
	detailURL = absolutize(anchor, base)

	if v, ok := card.Attr("data-id"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), detailURL
	}
	return st.ListingID(anchor), detailURL
}

// cardTitle tries anchor text, headings/bold, a title-class element, then
// the first line of the flattened card text.
func cardTitle(card *goquery.Selection, flat string) string {
	candidates := []string{
		compactText(card.Find("a").First()),
		compactText(card.Find("h1, h2, h3, h4, b, strong").First()),
		compactText(card.Find(".title, .listing-title").First()),
		extract.FirstNonEmptyLine(flat),
	}
	for _, c := range candidates {
		if t := extract.CleanTitle(c); t != "" {
			return t
		}
	}
	return ""
}

// cardLocation reads the location-link list (second-to-last link is the
// district, last is the estate); without location links it falls back to
// the bilingual district token scan over the flattened text.
func cardLocation(card *goquery.Selection, flat string) (district, estate string) {
	links := card.Find(locationLinkSelector)
	if n := links.Length(); n > 0 {
		if n >= 2 {
			district = compactText(links.Eq(n - 2))
			estate = compactText(links.Eq(n - 1))
		} else {
			district = compactText(links.Eq(0))
		}
		return district, estate
	}
	if d, e, ok := extract.District(flat); ok {
		return d, e
	}
	return "", ""
}

func absolutize(href string, base *url.URL) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !u.IsAbs() && base != nil {
		u = base.ResolveReference(u)
	}
	return u.String()
}
