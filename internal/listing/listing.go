// Package listing defines the records produced and persisted by the
// crawl pipeline. The JSON field names are the downstream contract and
// must not change.
package listing

// Lang identifies a listing language.
type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

// Other returns the alternate language.
func (l Lang) Other() Lang {
	if l == LangEN {
		return LangZH
	}
	return LangEN
}

// Price is a normalized price value.
type Price struct {
	Raw  string `json:"raw"`
	HKD  int64  `json:"hkd"`
	Unit string `json:"unit"`
}

// Summary is one listing as seen on a list page. It is created once
// during the crawl phase and never mutated after detail fetch begins.
type Summary struct {
	ListingID string   `json:"listingId"`
	Title     string   `json:"title"`
	District  string   `json:"district,omitempty"`
	Estate    string   `json:"estate,omitempty"`
	PriceText string   `json:"priceText,omitempty"`
	Types     []string `json:"types,omitempty"`
	PostedAgo string   `json:"postedAgo,omitempty"`
	DetailURL string   `json:"detailUrl"`
	Lang      Lang     `json:"lang"`
}

// Detail is the extraction result for one (listing, language) detail page.
type Detail struct {
	DetailTitle     string   `json:"detailTitle,omitempty"`
	SummaryText     string   `json:"summaryText,omitempty"`
	Description     string   `json:"description,omitempty"`
	CreatedDate     string   `json:"createdDate,omitempty"`
	UpdatedDate     string   `json:"updatedDate,omitempty"`
	BuildingAge     string   `json:"buildingAge,omitempty"`
	Address         string   `json:"address,omitempty"`
	AgencyName      string   `json:"agencyName,omitempty"`
	LicenseNo       string   `json:"licenseNo,omitempty"`
	CarparkKinds    []string `json:"carparkKinds,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	CoverImage      string   `json:"coverImage,omitempty"`
	PriceObj        *Price   `json:"priceObj,omitempty"`
	PostedAgoDetail string   `json:"postedAgoDetail,omitempty"`
}

// I18n holds each language's detail record verbatim for bilingual display.
type I18n struct {
	EN *Detail `json:"en"`
	ZH *Detail `json:"zh"`
}

// Merged is the persisted unit: crawl summary combined with both
// languages' detail records.
type Merged struct {
	ListingID     string   `json:"listingId"`
	Title         string   `json:"title"`
	District      string   `json:"district,omitempty"`
	Estate        string   `json:"estate,omitempty"`
	PriceText     string   `json:"priceText,omitempty"`
	PriceHKD      int64    `json:"priceHkd,omitempty"`
	Types         []string `json:"types,omitempty"`
	CarparkKinds  []string `json:"carparkKinds,omitempty"`
	PostedAgo     string   `json:"postedAgo,omitempty"`
	DetailURL     string   `json:"detailUrl"`
	Address       string   `json:"address,omitempty"`
	AgencyName    string   `json:"agencyName,omitempty"`
	LicenseNo     string   `json:"licenseNo,omitempty"`
	Photos        []string `json:"photos,omitempty"`
	CoverImage    string   `json:"coverImage,omitempty"`
	I18n          I18n     `json:"i18n"`
	DetailFetched bool     `json:"_detailFetched"`
	Error         string   `json:"_error,omitempty"`
}
