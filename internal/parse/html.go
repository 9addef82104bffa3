// Package parse turns list-page and detail-page HTML into listing
// records using layered selector and regex cascades. Extraction misses
// degrade to empty fields, never errors.
package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// flattenText renders a selection's text content one text node per line,
// skipping script/style, so line-based heuristics have lines to work on.
func flattenText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteByte('\n')
			}
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.TrimRight(b.String(), "\n")
}

// compactText normalizes a selection's text to single-space separated.
func compactText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// firstAttr returns the first present, non-empty attribute among names.
func firstAttr(s *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := s.Attr(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
