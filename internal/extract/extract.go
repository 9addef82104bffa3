// Package extract holds the pure text extractors used by the card and
// detail parsers. Every extractor degrades to a zero value rather than
// returning an error; pattern cascades short-circuit on first success.
package extract

import (
	"regexp"
	"strings"
)

// An Extractor pulls a value out of a text blob, reporting whether it
// matched.
type Extractor func(text string) (string, bool)

// First runs extractors in order and returns the first successful value.
func First(text string, extractors ...Extractor) (string, bool) {
	for _, ex := range extractors {
		if v, ok := ex(text); ok {
			return v, true
		}
	}
	return "", false
}

// Pattern adapts a regexp with one capture group into an Extractor.
func Pattern(re *regexp.Regexp) Extractor {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

// CleanTitle strips leading ordinals and widget noise from a title
// candidate.
func CleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = ordinalPrefix.ReplaceAllString(s, "")
	for _, tok := range titleNoiseTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(s)
}

var ordinalPrefix = regexp.MustCompile(`^\s*\d+\s*[.)]\s*`)

// FirstNonEmptyLine returns the first non-blank line of a text blob.
func FirstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
