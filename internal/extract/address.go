package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reRoadSuffixEN = regexp.MustCompile(
	`(?i)\b(?:Road|Rd|Street|St|Avenue|Ave|Lane|Court|Way|Drive|Terrace|Path|Square)\b`)

// hasRoadSuffix reports whether a line looks like a street address.
func hasRoadSuffix(line string) bool {
	if reRoadSuffixEN.MatchString(line) {
		return true
	}
	return strings.ContainsAny(line, roadSuffixZH)
}

// AddressLine picks the most address-like line from a candidate block:
// the last line carrying a road-suffix token, else the first sufficiently
// long line.
func AddressLine(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	best := ""
	for _, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if hasRoadSuffix(line) {
			best = line
		}
	}
	if best != "" {
		return best, true
	}
	for _, line := range lines {
		if line = strings.TrimSpace(line); utf8.RuneCountInString(line) >= 6 {
			return line, true
		}
	}
	return "", false
}
