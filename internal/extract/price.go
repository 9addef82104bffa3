package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

// Price patterns, tried in order; the first matching form wins.
var (
	reMillions = regexp.MustCompile(`(?i)(?:HKD?)?\$?\s*([\d,]+(?:\.\d+)?)\s*millions?`)
	reWan      = regexp.MustCompile(`(?:HKD?)?\$?\s*([\d,]+(?:\.\d+)?)\s*萬元?`)
	rePlain    = regexp.MustCompile(`(?i)(?:HKD?)?\$\s*([\d,]+)`)
)

// Price normalizes a price phrase to HKD. Supported forms:
// "HKD$0.925 Millions" (x1e6), "$92.5 萬元" (x1e4), "HKD$925,000".
func Price(text string) (listing.Price, bool) {
	for _, form := range []struct {
		re   *regexp.Regexp
		mult float64
	}{
		{reMillions, 1e6},
		{reWan, 1e4},
		{rePlain, 1},
	} {
		m := form.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return listing.Price{
			Raw:  strings.TrimSpace(m[0]),
			HKD:  int64(math.Round(n * form.mult)),
			Unit: "HKD",
		}, true
	}
	return listing.Price{}, false
}
