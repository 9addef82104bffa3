package extract

import "testing"

func TestDates_CombinedForm(t *testing.T) {
	created, updated := Dates("Created: 2024-01-02 | Updated: 2024-02-03")
	if created != "2024-01-02" || updated != "2024-02-03" {
		t.Errorf("got (%q, %q)", created, updated)
	}
}

func TestDates_SeparateBilingual(t *testing.T) {
	tests := []struct {
		text             string
		created, updated string
	}{
		{"Created: 2024-01-02 something Updated: 2024-02-03", "2024-01-02", "2024-02-03"},
		{"建立日期 2024/01/02 最後更新 2024/02/03", "2024/01/02", "2024/02/03"},
		{"刊登日期: 2024-05-06", "2024-05-06", ""},
		{"更新日期: 2024-05-06", "", "2024-05-06"},
		{"no dates at all", "", ""},
	}

	for _, tt := range tests {
		created, updated := Dates(tt.text)
		if created != tt.created || updated != tt.updated {
			t.Errorf("Dates(%q) = (%q, %q), want (%q, %q)",
				tt.text, created, updated, tt.created, tt.updated)
		}
	}
}

func TestPostedAgo_Bilingual(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"3 days ago posted", "3 days ago"},
		{"Posted 5 hours ago", "5 hours ago"},
		{"3日前刊登", "3日前"},
		{"12小時前", "12小時前"},
	}
	for _, tt := range tests {
		got, ok := PostedAgo(tt.text)
		if !ok || got != tt.want {
			t.Errorf("PostedAgo(%q) = %q ok=%v, want %q", tt.text, got, ok, tt.want)
		}
	}

	if _, ok := PostedAgo("no relative time"); ok {
		t.Error("unexpected match")
	}
}

func TestAddressLine_PrefersRoadSuffix(t *testing.T) {
	text := "some long introductory words\n8 Cheung Sha Wan Road\nfloor plan available"
	got, ok := AddressLine(text)
	if !ok || got != "8 Cheung Sha Wan Road" {
		t.Errorf("AddressLine = %q ok=%v", got, ok)
	}
}

func TestAddressLine_LastRoadLineWins(t *testing.T) {
	text := "1 First Street\n2 Second Road"
	got, _ := AddressLine(text)
	if got != "2 Second Road" {
		t.Errorf("AddressLine = %q, want the last road line", got)
	}
}

func TestAddressLine_ChineseSuffix(t *testing.T) {
	got, ok := AddressLine("長沙灣道888號")
	if !ok || got != "長沙灣道888號" {
		t.Errorf("AddressLine = %q ok=%v", got, ok)
	}
}

func TestAddressLine_FallbackLongLine(t *testing.T) {
	got, ok := AddressLine("ok\na sufficiently long line here")
	if !ok || got != "a sufficiently long line here" {
		t.Errorf("AddressLine = %q ok=%v", got, ok)
	}
}

func TestLicenseNo_Cascade(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"License Number: C-123456", "C-123456"},
		{"牌照號碼: E-654321", "E-654321"},
		{"agent ref S-112233 on file", "S-112233"},
	}
	for _, tt := range tests {
		got, ok := LicenseNo(tt.text)
		if !ok || got != tt.want {
			t.Errorf("LicenseNo(%q) = %q ok=%v, want %q", tt.text, got, ok, tt.want)
		}
	}
}

func TestBuildingAge(t *testing.T) {
	if got, ok := BuildingAge("Building Age: 25 years"); !ok || got != "25" {
		t.Errorf("BuildingAge = %q ok=%v", got, ok)
	}
	if got, ok := BuildingAge("樓齡 30"); !ok || got != "30" {
		t.Errorf("BuildingAge = %q ok=%v", got, ok)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1. Kowloon Carpark", "Kowloon Carpark"},
		{"  23) Mong Kok space  ", "Mong Kok space"},
		{"Share Kowloon Carpark", "Kowloon Carpark"},
		{"收藏 長沙灣車位", "長沙灣車位"},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.in); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
