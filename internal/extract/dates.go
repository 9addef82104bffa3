package extract

import "regexp"

const datePat = `(\d{4}[-/.]\d{1,2}[-/.]\d{1,2})`

var (
	reCreatedUpdated = regexp.MustCompile(
		`(?:Created|建立日期)[:：]\s*` + datePat + `\s*\|\s*(?:Updated|更新日期)[:：]\s*` + datePat)

	createdPatterns = []Extractor{
		Pattern(regexp.MustCompile(`Created[:：]\s*` + datePat)),
		Pattern(regexp.MustCompile(`建立日期[:：]?\s*` + datePat)),
		Pattern(regexp.MustCompile(`刊登(?:日期)?[:：]?\s*` + datePat)),
	}
	updatedPatterns = []Extractor{
		Pattern(regexp.MustCompile(`Updated[:：]\s*` + datePat)),
		Pattern(regexp.MustCompile(`更新日期[:：]?\s*` + datePat)),
		Pattern(regexp.MustCompile(`最後更新[:：]?\s*` + datePat)),
	}
)

// Dates extracts created/updated dates. The combined
// "Created:<date> | Updated:<date>" form is tried first, then separate
// bilingual labels; first match wins per field. Missing fields stay "".
func Dates(text string) (created, updated string) {
	if m := reCreatedUpdated.FindStringSubmatch(text); m != nil {
		return m[1], m[2]
	}
	created, _ = First(text, createdPatterns...)
	updated, _ = First(text, updatedPatterns...)
	return created, updated
}

var buildingAgePatterns = []Extractor{
	Pattern(regexp.MustCompile(`(?i)Building\s*Age[:：]?\s*(\d+)`)),
	Pattern(regexp.MustCompile(`樓齡[:：]?\s*(\d+)`)),
}

// BuildingAge extracts the building age in years, as text.
func BuildingAge(text string) (string, bool) {
	return First(text, buildingAgePatterns...)
}
