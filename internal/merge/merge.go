// Package merge combines per-language detail records with the crawl
// summary into the persisted bilingual record.
package merge

import (
	"regexp"

	"github.com/parkcrawl/parkcrawl/internal/extract"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/photo"
)

// Merge builds a Merged record from the crawl summary and up to two
// detail records. Scalars take the first non-empty value with detail
// output preferred over crawl output; sets union across languages with a
// final keyword re-scan of both descriptions; photos union and re-run
// through the normalizer. The i18n substructure keeps each language's
// record verbatim.
func Merge(sum listing.Summary, en, zh *listing.Detail, hostPattern *regexp.Regexp) listing.Merged {
	m := listing.Merged{
		ListingID: sum.ListingID,
		District:  sum.District,
		Estate:    sum.Estate,
		DetailURL: sum.DetailURL,
		I18n:      listing.I18n{EN: en, ZH: zh},
	}

	primary, alternate := en, zh
	if sum.Lang == listing.LangZH {
		primary, alternate = zh, en
	}

	// Detail-parsed values beat crawl values; primary language beats
	// alternate.
	m.Title = firstNonEmpty(detailTitle(primary), detailTitle(alternate), sum.Title)
	m.PostedAgo = firstNonEmpty(detailPosted(primary), detailPosted(alternate), sum.PostedAgo)
	m.PriceText = firstNonEmpty(detailPriceRaw(primary), detailPriceRaw(alternate), sum.PriceText)

	for _, d := range []*listing.Detail{primary, alternate} {
		if d == nil {
			continue
		}
		m.Address = firstNonEmpty(m.Address, d.Address)
		m.AgencyName = firstNonEmpty(m.AgencyName, d.AgencyName)
		m.LicenseNo = firstNonEmpty(m.LicenseNo, d.LicenseNo)
		if m.PriceHKD == 0 && d.PriceObj != nil {
			m.PriceHKD = d.PriceObj.HKD
		}
	}

	rescan := extract.Categories(detailText(en) + "\n" + detailText(zh))
	m.Types = extract.UnionTags(sum.Types, rescan)
	m.CarparkKinds = extract.UnionTags(detailKinds(en), detailKinds(zh), rescan)

	mergePhotos(&m, en, zh, hostPattern)
	deriveLocation(&m, primary, alternate)

	return m
}

// mergePhotos unions both languages' photo lists and re-normalizes so
// the merged list stays deduplicated by canonical URL.
func mergePhotos(m *listing.Merged, en, zh *listing.Detail, hostPattern *regexp.Regexp) {
	var candidates []string
	for _, d := range []*listing.Detail{en, zh} {
		if d != nil {
			candidates = append(candidates, d.Photos...)
		}
	}
	set := photo.NewNormalizer(m.DetailURL, hostPattern).Normalize(candidates)
	m.Photos = set.Photos
	m.CoverImage = set.Cover
}

// deriveLocation fills district/estate from either language's summary or
// title text when the crawl phase left them empty.
func deriveLocation(m *listing.Merged, details ...*listing.Detail) {
	if m.District != "" {
		return
	}
	for _, d := range details {
		if d == nil {
			continue
		}
		for _, text := range []string{d.DetailTitle, d.SummaryText} {
			if district, estate, ok := extract.District(text); ok {
				m.District = district
				if m.Estate == "" {
					m.Estate = estate
				}
				return
			}
		}
	}
}

func detailText(d *listing.Detail) string {
	if d == nil {
		return ""
	}
	return d.Description + "\n" + d.SummaryText
}

func detailTitle(d *listing.Detail) string {
	if d == nil {
		return ""
	}
	return d.DetailTitle
}

func detailPosted(d *listing.Detail) string {
	if d == nil {
		return ""
	}
	return d.PostedAgoDetail
}

func detailPriceRaw(d *listing.Detail) string {
	if d == nil || d.PriceObj == nil {
		return ""
	}
	return d.PriceObj.Raw
}

func detailKinds(d *listing.Detail) []string {
	if d == nil {
		return nil
	}
	return d.CarparkKinds
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
