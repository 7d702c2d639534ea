package job

import "strings"

type Category string

const (
	CategoryWebDevelopment    Category = "web_development"
	CategoryMobileDevelopment Category = "mobile_development"
	CategoryDesign            Category = "design"
	CategoryWriting           Category = "writing"
	CategoryMarketing         Category = "marketing"
	CategoryDataScience       Category = "data_science"
	CategoryBlockchain        Category = "blockchain"
	CategoryOther             Category = "other"
)

var Categories = []Category{
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryDesign,
	CategoryWriting,
	CategoryMarketing,
	CategoryDataScience,
	CategoryBlockchain,
	CategoryOther,
}

// aliases maps the labels the frontend and older clients send.
var aliases = map[string]Category{
	"web":                    CategoryWebDevelopment,
	"web_dev":                CategoryWebDevelopment,
	"frontend":               CategoryWebDevelopment,
	"backend":                CategoryWebDevelopment,
	"full_stack":             CategoryWebDevelopment,
	"mobile":                 CategoryMobileDevelopment,
	"mobile_app":             CategoryMobileDevelopment,
	"ios":                    CategoryMobileDevelopment,
	"android":                CategoryMobileDevelopment,
	"ui_ux":                  CategoryDesign,
	"ui_ux_design":           CategoryDesign,
	"graphic_design":         CategoryDesign,
	"content_writing":        CategoryWriting,
	"copywriting":            CategoryWriting,
	"translation":            CategoryWriting,
	"digital_marketing":      CategoryMarketing,
	"seo":                    CategoryMarketing,
	"data":                   CategoryDataScience,
	"data_analysis":          CategoryDataScience,
	"machine_learning":       CategoryDataScience,
	"ai_ml":                  CategoryDataScience,
	"web3":                   CategoryBlockchain,
	"smart_contracts":        CategoryBlockchain,
	"hedera":                 CategoryBlockchain,
	"blockchain_development": CategoryBlockchain,
}

func canonicalKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_", "/", "_", "&", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// NormalizeCategory maps a free-form label onto the fixed vocabulary.
// extra aliases (from the moderation policy) win over the built-in ones.
// Unknown labels fall back to CategoryOther.
func NormalizeCategory(raw string, extra map[string]string) Category {
	key := canonicalKey(raw)
	if key == "" {
		return CategoryOther
	}
	for alias, target := range extra {
		if canonicalKey(alias) == key {
			if c := Category(canonicalKey(target)); c.Valid() {
				return c
			}
		}
	}
	if c := Category(key); c.Valid() {
		return c
	}
	if c, ok := aliases[key]; ok {
		return c
	}
	return CategoryOther
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
