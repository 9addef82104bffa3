package extract

import "strings"

// Categories matches the bilingual category taxonomy against text and
// returns the canonical tags found, deduplicated, in taxonomy order.
func Categories(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, kw := range CategoryKeywords {
		for _, pat := range kw.Patterns {
			var hit bool
			if pat[0] < 0x80 {
				hit = strings.Contains(lower, pat)
			} else {
				hit = strings.Contains(text, pat)
			}
			if hit {
				tags = append(tags, kw.Tag)
				break
			}
		}
	}
	return tags
}

// UnionTags merges tag sets preserving first-seen order.
func UnionTags(sets ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, set := range sets {
		for _, tag := range set {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
