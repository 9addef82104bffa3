package extract

import "regexp"

// Posted-ago phrases, English and Chinese forms.
var (
	rePostedEN = regexp.MustCompile(`(?i)(\d+\s*(?:minute|hour|day|week|month)s?\s*ago)(?:\s*posted)?`)
	rePostedZH = regexp.MustCompile(`(\d+\s*(?:分鐘|小時|日|天|星期|月)前)(?:刊登)?`)
)

// PostedAgo extracts a relative-time phrase such as "3 days ago" or
// "3日前".
func PostedAgo(text string) (string, bool) {
	return First(text, Pattern(rePostedEN), Pattern(rePostedZH))
}
