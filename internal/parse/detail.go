package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/parkcrawl/parkcrawl/internal/extract"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/photo"
	"github.com/parkcrawl/parkcrawl/internal/site"
)

// summarySelectors locate the detail page's header/summary block.
var summarySelectors = []string{
	"div.detail-header",
	"div.property-summary",
	"div.summary",
	"header",
}

// photoSelectors are tried in order when harvesting image candidates.
var photoSelectors = []string{
	".gallery img",
	".photos img",
	".photo img",
	".image img",
	".slider img",
	"img",
}

// lazyAttrs are the attributes that may carry a real image URL.
var lazyAttrs = []string{"src", "data-src", "data-original", "data-lazy"}

// addressLabels and the agency labels mark the blocks those fields live in.
var addressLabels = []string{"Address", "地址"}

const summaryFallbackRunes = 800

// Detail parses one detail page into a per-language detail record.
func Detail(pageHTML string, lang listing.Lang, pageURL string, st site.Config) listing.Detail {
	var d listing.Detail

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return d
	}
	body := doc.Find("body")
	fullText := flattenText(body)

	d.DetailTitle = extract.CleanTitle(compactText(doc.Find("h1").First()))
	d.SummaryText = summaryText(doc, fullText)
	d.Description = compactText(doc.Find(".description, #description, .detail-content").First())

	d.CreatedDate, d.UpdatedDate = extract.Dates(fullText)
	d.BuildingAge, _ = extract.BuildingAge(fullText)
	d.Address = addressField(doc, fullText)
	d.AgencyName, d.LicenseNo = agencyField(doc, fullText, st.BrandName)
	d.CarparkKinds = extract.Categories(fullText)

	priceText := compactText(doc.Find(".price").First())
	if priceText == "" {
		priceText = fullText
	}
	if p, ok := extract.Price(priceText); ok {
		d.PriceObj = &p
	}

	if ago, ok := extract.PostedAgo(d.SummaryText); ok {
		d.PostedAgoDetail = ago
	} else if ago, ok := extract.PostedAgo(fullText); ok {
		d.PostedAgoDetail = ago
	}

	set := photo.NewNormalizer(pageURL, st.PhotoHostPattern).Normalize(photoCandidates(doc))
	d.Photos = set.Photos
	d.CoverImage = set.Cover

	return d
}

// summaryText tries the summary selector cascade, then falls back to the
// leading slice of the page's flattened text.
func summaryText(doc *goquery.Document, fullText string) string {
	for _, sel := range summarySelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			if text := flattenText(s); text != "" {
				return text
			}
		}
	}
	runes := []rune(fullText)
	if len(runes) > summaryFallbackRunes {
		runes = runes[:summaryFallbackRunes]
	}
	return string(runes)
}

// addressField finds a block labelled Address/地址, strips the label and
// applies the road-suffix line heuristic. When no labelled element exists
// the text after the label in the flattened body is used.
func addressField(doc *goquery.Document, fullText string) string {
	var result string
	doc.Find("dt, th, label, span, td, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		own := strings.Trim(compactText(s), " :：")
		if !isLabel(own, addressLabels) {
			return true
		}
		candidate := flattenText(s.Next())
		if candidate == "" {
			candidate = flattenText(s.Parent())
		}
		candidate = stripLabels(candidate, addressLabels)
		if line, ok := extract.AddressLine(candidate); ok {
			result = line
			return false
		}
		return true
	})
	if result != "" {
		return result
	}

	for _, label := range addressLabels {
		if idx := strings.Index(fullText, label); idx >= 0 {
			tail := fullText[idx+len(label):]
			if line, ok := extract.AddressLine(tail); ok {
				return line
			}
		}
	}
	return ""
}

// agencyField scans blocks mentioning the agency labels; within the
// nearest enclosing block it pulls a licence number via the regex cascade
// and the agency name from a nested link/bold element that is not the
// site's own brand.
func agencyField(doc *goquery.Document, fullText, brand string) (name, license string) {
	doc.Find("div, section, td, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := flattenText(s)
		if matchLabel(text, extract.AgencyLabels) == "" {
			return true
		}
		// Prefer the smallest block that still mentions the label.
		if inner := s.ChildrenFiltered("div, section, td, p"); inner.Length() > 0 {
			found := false
			inner.Each(func(_ int, c *goquery.Selection) {
				if matchLabel(flattenText(c), extract.AgencyLabels) != "" {
					found = true
				}
			})
			if found {
				return true
			}
		}
		if lic, ok := extract.LicenseNo(text); ok {
			license = lic
		}
		s.Find("a, b, strong").EachWithBreak(func(_ int, e *goquery.Selection) bool {
			t := compactText(e)
			if t == "" || strings.EqualFold(t, brand) {
				return true
			}
			name = t
			return false
		})
		return false
	})

	if license == "" {
		license, _ = extract.LicenseNo(fullText)
	}
	return name, license
}

// photoCandidates harvests raw image URL candidates via the photo
// selector cascade, first selector with hits wins.
func photoCandidates(doc *goquery.Document) []string {
	var out []string
	for _, sel := range photoSelectors {
		imgs := doc.Find(sel)
		if imgs.Length() == 0 {
			continue
		}
		imgs.Each(func(_ int, img *goquery.Selection) {
			if src := firstAttr(img, lazyAttrs...); src != "" {
				out = append(out, src)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	return out
}

// isLabel reports whether text is exactly one of the labels.
func isLabel(text string, labels []string) bool {
	for _, label := range labels {
		if text == label {
			return true
		}
	}
	return false
}

func matchLabel(text string, labels []string) string {
	for _, label := range labels {
		if strings.Contains(text, label) {
			return label
		}
	}
	return ""
}

func stripLabels(text string, labels []string) string {
	for _, label := range labels {
		text = strings.ReplaceAll(text, label, "")
	}
	return strings.Trim(text, " \t:：\n")
}
