package extract

import "regexp"

// AgencyLabels mark blocks that carry agency and licence details.
var AgencyLabels = []string{"Property Agency Company", "地產代理公司"}

// Licence number cascade: explicit English label, Chinese label, then a
// bare EAA-style licence code.
var licensePatterns = []Extractor{
	Pattern(regexp.MustCompile(`(?i)Licen[cs]e\s*(?:No\.?|Number)[:：]?\s*([A-Z]-?\d{4,8})`)),
	Pattern(regexp.MustCompile(`牌照號碼[:：]?\s*([A-Z]-?\d{4,8})`)),
	Pattern(regexp.MustCompile(`\b([CES]-\d{6})\b`)),
}

// LicenseNo extracts an estate-agent licence number.
func LicenseNo(text string) (string, bool) {
	return First(text, licensePatterns...)
}
