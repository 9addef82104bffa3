package parse

import (
	"regexp"
	"strings"
	"testing"

	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/site"
)

func testSite() site.Config {
	return site.Config{
		ListRoot: map[listing.Lang]string{
			listing.LangEN: "https://test.local/en/carpark",
			listing.LangZH: "https://test.local/carpark",
		},
		PageSuffix:       "/page-%d",
		DetailIDPattern:  regexp.MustCompile(`detail-(\d+)`),
		LangSegment:      "/en",
		LangSegmentLang:  listing.LangEN,
		PhotoHostPattern: regexp.MustCompile(`(?i)^pic\.test\.local$`),
		BrandName:        "TestPark",
	}
}

const listPageHTML = `<html><body>
<div class="result-count">2 results found</div>
<div class="property-item" data-id="12345">
  <a href="/en/carpark/detail-12345.html">Kowloon Cheung Sha Wan Carpark For Sale #12345</a>
  <div class="location"><a href="/d/kowloon">Kowloon</a><a href="/e/csw">Cheung Sha Wan</a></div>
  <div class="price">HKD$925,000</div>
  <div class="posted">3 days ago</div>
  <div class="tags">Residential Indoor</div>
</div>
<div class="property-item">
  <a href="/en/carpark/detail-67890.html">Mong Kok outdoor parking space</a>
  <div class="price">HKD$1.2 Millions</div>
  <div class="posted">5 hours ago</div>
</div>
</body></html>`

func TestCards_ParsesListPage(t *testing.T) {
	cards := Cards(listPageHTML, listing.LangEN, "https://test.local/en/carpark", testSite())

	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	first := cards[0]
	if first.ListingID != "12345" {
		t.Errorf("listingId = %q, want 12345 (from data-id)", first.ListingID)
	}
	if first.DetailURL != "https://test.local/en/carpark/detail-12345.html" {
		t.Errorf("detailUrl = %q", first.DetailURL)
	}
	if !strings.Contains(first.Title, "Cheung Sha Wan") {
		t.Errorf("title = %q", first.Title)
	}
	if first.District != "Kowloon" || first.Estate != "Cheung Sha Wan" {
		t.Errorf("location = (%q, %q), want location links", first.District, first.Estate)
	}
	if first.PriceText == "" || !strings.Contains(first.PriceText, "925,000") {
		t.Errorf("priceText = %q", first.PriceText)
	}
	if first.PostedAgo != "3 days ago" {
		t.Errorf("postedAgo = %q", first.PostedAgo)
	}
	wantTypes := []string{"residential", "indoor"}
	if len(first.Types) != 2 || first.Types[0] != wantTypes[0] || first.Types[1] != wantTypes[1] {
		t.Errorf("types = %v, want %v", first.Types, wantTypes)
	}
	if first.Lang != listing.LangEN {
		t.Errorf("lang = %q", first.Lang)
	}

	second := cards[1]
	if second.ListingID != "67890" {
		t.Errorf("listingId = %q, want 67890 (from anchor URL)", second.ListingID)
	}
	if second.District != "Mong Kok" {
		t.Errorf("district = %q, want token-scan fallback Mong Kok", second.District)
	}
}

func TestCards_SkipsCardWithoutID(t *testing.T) {
	html := `<html><body>
<div class="property-item"><a href="/somewhere/else">No id here</a></div>
<div class="property-item" data-id="11"><a href="/en/carpark/detail-11.html">Valid</a></div>
</body></html>`

	cards := Cards(html, listing.LangEN, "https://test.local/en/carpark", testSite())
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].ListingID != "11" {
		t.Errorf("listingId = %q", cards[0].ListingID)
	}
}

func TestCards_AnchorParentFallback(t *testing.T) {
	// No structural card selectors match: cards are found as parents of
	// detail anchors.
	html := `<html><body>
<div class="whatever">
  <a href="/en/carpark/detail-42.html">Tsuen Wan carpark</a>
  <span class="price">HKD$500,000</span>
</div>
</body></html>`

	cards := Cards(html, listing.LangEN, "https://test.local/en/carpark", testSite())
	if len(cards) != 1 {
		t.Fatalf("expected 1 card via fallback, got %d", len(cards))
	}
	if cards[0].ListingID != "42" {
		t.Errorf("listingId = %q", cards[0].ListingID)
	}
	if cards[0].District != "Tsuen Wan" {
		t.Errorf("district = %q", cards[0].District)
	}
}

func TestCards_ChineseCard(t *testing.T) {
	html := `<html><body>
<div class="property-item" data-id="888">
  <a href="/carpark/detail-888.html">長沙灣幸福工業大廈車位出售</a>
  <div class="price">售 $92.5 萬元</div>
  <div class="posted">3日前刊登</div>
  <div class="tags">住宅車位 室內</div>
</div>
</body></html>`

	cards := Cards(html, listing.LangZH, "https://test.local/carpark", testSite())
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	c := cards[0]
	if c.District != "長沙灣" {
		t.Errorf("district = %q", c.District)
	}
	if c.PostedAgo != "3日前" {
		t.Errorf("postedAgo = %q", c.PostedAgo)
	}
	if len(c.Types) != 2 || c.Types[0] != "residential" || c.Types[1] != "indoor" {
		t.Errorf("types = %v", c.Types)
	}
}

func TestCards_EmptyAndInvalidHTML(t *testing.T) {
	if cards := Cards("", listing.LangEN, "https://test.local/en/carpark", testSite()); len(cards) != 0 {
		t.Errorf("expected no cards from empty page, got %d", len(cards))
	}
}
