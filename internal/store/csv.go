package store

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

// csvHeader is the flat projection's fixed column set.
var csvHeader = []string{
	"listingId", "title", "district", "estate", "priceText", "priceHkd",
	"types", "carparkKinds", "postedAgo", "address", "agencyName",
	"licenseNo", "coverImage", "photos", "detailUrl", "detailFetched",
}

// SaveCSV writes the flat spreadsheet projection. Array fields are
// pipe-joined.
func SaveCSV(path string, dataset map[string]*listing.Merged) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Sorted(dataset) {
		row := []string{
			r.ListingID,
			r.Title,
			r.District,
			r.Estate,
			r.PriceText,
			strconv.FormatInt(r.PriceHKD, 10),
			strings.Join(r.Types, "|"),
			strings.Join(r.CarparkKinds, "|"),
			r.PostedAgo,
			r.Address,
			r.AgencyName,
			r.LicenseNo,
			r.CoverImage,
			strings.Join(r.Photos, "|"),
			r.DetailURL,
			strconv.FormatBool(r.DetailFetched),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
