package parse

import (
	"strings"
	"testing"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

const detailPageEN = `<html><body>
<h1>Cheung Sha Wan Carpark For Sale</h1>
<div class="detail-header">
  Sell HKD$0.925 Millions
  <span>3 days ago posted</span>
</div>
<div class="description">Indoor residential carpark near the market.</div>
<div class="meta">Created: 2024-01-02 | Updated: 2024-02-03</div>
<div class="meta">Building Age: 25</div>
<div class="row"><span>Address</span><span>8 Cheung Sha Wan Road</span></div>
<div class="agent">
  Property Agency Company
  <a href="/agency/9">Best Park Agency</a>
  License Number: C-123456
</div>
<div class="gallery">
  <img src="https://pic.test.local/photos/1/resize/640x480/a_large.jpg">
  <img data-src="https://pic.test.local/photos/1/a_large.jpg">
  <img src="https://pic.test.local/photos/1/b_thumb.jpg">
  <img src="https://pic.test.local/logo/brand.png">
  <img src="data:image/gif;base64,AAAA">
</div>
</body></html>`

func TestDetail_ParsesEnglishPage(t *testing.T) {
	d := Detail(detailPageEN, listing.LangEN, "https://test.local/en/carpark/detail-12345.html", testSite())

	if d.DetailTitle != "Cheung Sha Wan Carpark For Sale" {
		t.Errorf("detailTitle = %q", d.DetailTitle)
	}
	if !strings.Contains(d.SummaryText, "0.925 Millions") {
		t.Errorf("summaryText = %q", d.SummaryText)
	}
	if d.Description != "Indoor residential carpark near the market." {
		t.Errorf("description = %q", d.Description)
	}
	if d.CreatedDate != "2024-01-02" || d.UpdatedDate != "2024-02-03" {
		t.Errorf("dates = (%q, %q)", d.CreatedDate, d.UpdatedDate)
	}
	if d.BuildingAge != "25" {
		t.Errorf("buildingAge = %q", d.BuildingAge)
	}
	if d.Address != "8 Cheung Sha Wan Road" {
		t.Errorf("address = %q", d.Address)
	}
	if d.AgencyName != "Best Park Agency" {
		t.Errorf("agencyName = %q", d.AgencyName)
	}
	if d.LicenseNo != "C-123456" {
		t.Errorf("licenseNo = %q", d.LicenseNo)
	}
	if d.PriceObj == nil || d.PriceObj.HKD != 925000 {
		t.Errorf("priceObj = %+v", d.PriceObj)
	}
	if d.PostedAgoDetail != "3 days ago" {
		t.Errorf("postedAgoDetail = %q", d.PostedAgoDetail)
	}

	// Photos: the resized and plain renditions of a_large share one
	// canonical URL; the logo and data URI are filtered.
	if len(d.Photos) != 2 {
		t.Fatalf("photos = %v", d.Photos)
	}
	if d.CoverImage != "https://pic.test.local/photos/1/a_large.jpg" {
		t.Errorf("coverImage = %q", d.CoverImage)
	}
	found := false
	for _, p := range d.Photos {
		if p == d.CoverImage {
			found = true
		}
	}
	if !found {
		t.Error("coverImage is not a member of photos")
	}

	kinds := strings.Join(d.CarparkKinds, ",")
	if !strings.Contains(kinds, "residential") || !strings.Contains(kinds, "indoor") {
		t.Errorf("carparkKinds = %v", d.CarparkKinds)
	}
}

const detailPageZH = `<html><body>
<h1>長沙灣車位出售</h1>
<div class="detail-header">售 $92.5 萬元 <span>3日前刊登</span></div>
<div class="description">室內住宅車位，近街市。</div>
<div class="meta">建立日期 2024/01/02 最後更新 2024/02/03</div>
<div class="row"><span>地址</span><span>長沙灣道888號</span></div>
<div class="agent">地產代理公司 <strong>泊好代理</strong> 牌照號碼: E-654321</div>
<div class="gallery">
  <img src="https://pic.test.local/photos/1/a_large.jpg">
</div>
</body></html>`

func TestDetail_ParsesChinesePage(t *testing.T) {
	d := Detail(detailPageZH, listing.LangZH, "https://test.local/carpark/detail-12345.html", testSite())

	if d.DetailTitle != "長沙灣車位出售" {
		t.Errorf("detailTitle = %q", d.DetailTitle)
	}
	if d.PriceObj == nil || d.PriceObj.HKD != 925000 {
		t.Errorf("priceObj = %+v", d.PriceObj)
	}
	if d.CreatedDate != "2024/01/02" || d.UpdatedDate != "2024/02/03" {
		t.Errorf("dates = (%q, %q)", d.CreatedDate, d.UpdatedDate)
	}
	if d.Address != "長沙灣道888號" {
		t.Errorf("address = %q", d.Address)
	}
	if d.AgencyName != "泊好代理" {
		t.Errorf("agencyName = %q", d.AgencyName)
	}
	if d.LicenseNo != "E-654321" {
		t.Errorf("licenseNo = %q", d.LicenseNo)
	}
	if d.PostedAgoDetail != "3日前" {
		t.Errorf("postedAgoDetail = %q", d.PostedAgoDetail)
	}
	if len(d.Photos) != 1 || d.CoverImage != d.Photos[0] {
		t.Errorf("photos = %v cover = %q", d.Photos, d.CoverImage)
	}
}

func TestDetail_SummaryFallbackToLeadingText(t *testing.T) {
	html := `<html><body><p>` + strings.Repeat("word ", 300) + `</p></body></html>`
	d := Detail(html, listing.LangEN, "https://test.local/en/carpark/detail-1.html", testSite())
	if d.SummaryText == "" {
		t.Fatal("expected fallback summary text")
	}
	if n := len([]rune(d.SummaryText)); n > 800 {
		t.Errorf("fallback summary is %d runes, want <= 800", n)
	}
}

func TestDetail_EmptyPage(t *testing.T) {
	d := Detail("", listing.LangEN, "https://test.local/en/carpark/detail-1.html", testSite())
	if d.PriceObj != nil || len(d.Photos) != 0 || d.Address != "" {
		t.Errorf("expected empty record, got %+v", d)
	}
}

func TestTotalCount(t *testing.T) {
	tests := []struct {
		html string
		want int
		ok   bool
	}{
		{`<html><body><div>132 results</div></body></html>`, 132, true},
		{`<html><body><div>共 1,234 個</div></body></html>`, 1234, true},
		{`<html><body><div>no totals</div></body></html>`, 0, false},
	}
	for _, tt := range tests {
		got, ok := TotalCount(tt.html)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TotalCount(%q) = (%d, %v), want (%d, %v)", tt.html, got, ok, tt.want, tt.ok)
		}
	}
}
