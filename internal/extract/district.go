package extract

import "strings"

// District scans text against the bilingual district tables and, on a
// match, derives the estate as the phrase immediately following the
// district token, cut at the first stop token.
func District(text string) (district, estate string, ok bool) {
	for _, tok := range DistrictTokens {
		for _, name := range []string{tok.EN, tok.ZH} {
			idx := indexToken(text, name)
			if idx < 0 {
				continue
			}
			rest := text[idx+len(name):]
			return name, estatePhrase(rest), true
		}
	}
	return "", "", false
}

func indexToken(text, name string) int {
	if name == "" {
		return -1
	}
	// English tokens match case-insensitively; Chinese ones literally.
	if name[0] < 0x80 {
		return strings.Index(strings.ToLower(text), strings.ToLower(name))
	}
	return strings.Index(text, name)
}

func estatePhrase(rest string) string {
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	cut := len(rest)
	for _, stop := range estateStopTokens {
		if idx := indexToken(rest, stop); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.Trim(rest[:cut], " \t-–,，:：")
}
