package extract

// Bilingual token tables. Kept as data rather than inline branches so a
// future locale only needs new table rows.

// DistrictToken is one recognizable district name in both languages.
type DistrictToken struct {
	EN string
	ZH string
}

// DistrictTokens lists known districts, broad regions first so they win
// when a title carries both a region and a neighbourhood.
var DistrictTokens = []DistrictToken{
	{"Kowloon", "九龍"},
	{"Hong Kong Island", "港島"},
	{"New Territories", "新界"},
	{"Cheung Sha Wan", "長沙灣"},
	{"Sham Shui Po", "深水埗"},
	{"Mong Kok", "旺角"},
	{"Yau Ma Tei", "油麻地"},
	{"Tsim Sha Tsui", "尖沙咀"},
	{"Kwun Tong", "觀塘"},
	{"Wong Tai Sin", "黃大仙"},
	{"To Kwa Wan", "土瓜灣"},
	{"Hung Hom", "紅磡"},
	{"Causeway Bay", "銅鑼灣"},
	{"Wan Chai", "灣仔"},
	{"North Point", "北角"},
	{"Quarry Bay", "鰂魚涌"},
	{"Chai Wan", "柴灣"},
	{"Aberdeen", "香港仔"},
	{"Kennedy Town", "堅尼地城"},
	{"Sheung Wan", "上環"},
	{"Tsuen Wan", "荃灣"},
	{"Kwai Chung", "葵涌"},
	{"Tsing Yi", "青衣"},
	{"Tuen Mun", "屯門"},
	{"Yuen Long", "元朗"},
	{"Tin Shui Wai", "天水圍"},
	{"Sheung Shui", "上水"},
	{"Fanling", "粉嶺"},
	{"Tai Po", "大埔"},
	{"Sha Tin", "沙田"},
	{"Ma On Shan", "馬鞍山"},
	{"Tseung Kwan O", "將軍澳"},
	{"Sai Kung", "西貢"},
	{"Tung Chung", "東涌"},
}

// estateStopTokens end the estate phrase that follows a district token.
var estateStopTokens = []string{
	"Carpark", "Car Park", "Parking", "For Sale", "For Rent", "#",
	"車位", "停車場", "出售", "出租", "放售", "放租",
}

// CategoryKeyword maps a canonical category tag to its bilingual synonyms.
type CategoryKeyword struct {
	Tag      string
	Patterns []string
}

// CategoryKeywords is the carpark category taxonomy. Longer synonyms come
// before their generic stems so matching stays unambiguous.
var CategoryKeywords = []CategoryKeyword{
	{"residential", []string{"residential", "住宅車位", "住宅"}},
	{"commercial", []string{"commercial", "工商車位", "工商"}},
	{"motorbike", []string{"motorbike", "motorcycle", "電單車位", "電單車"}},
	{"truck", []string{"truck", "lorry", "貨車車位", "貨車"}},
	{"indoor", []string{"indoor", "室內"}},
	{"outdoor", []string{"outdoor", "露天"}},
}

// roadSuffixZH holds single-rune Chinese road suffixes.
const roadSuffixZH = "道街路徑里巷坊號"

// titleNoiseTokens are widget words that leak into flattened card text.
var titleNoiseTokens = []string{
	"Share", "Bookmark", "Favourite", "Compare",
	"分享", "收藏", "比較",
}
