package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Site-reported result-count phrases, English and Chinese.
var (
	reTotalEN = regexp.MustCompile(`(?i)([\d,]+)\s*(?:results|listings|properties)`)
	reTotalZH = regexp.MustCompile(`共\s*([\d,]+)\s*個`)
)

// TotalCount scrapes the site-reported total result count from a list
// page. Absent counts report ok=false and are treated as unbounded.
func TotalCount(pageHTML string) (int, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return 0, false
	}
	text := flattenText(doc.Find("body"))
	for _, re := range []*regexp.Regexp{reTotalEN, reTotalZH} {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			if err == nil && n > 0 {
				return n, true
			}
		}
	}
	return 0, false
}
