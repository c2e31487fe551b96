package catalog

import "strings"

// Category filter values accepted by the storefront, matching the buttons of
// the original shop surface.
const (
	FilterAll      = "ALL"
	FilterMobile   = "MOBILE"
	FilterPC       = "PC"
	FilterConsole  = "CONSOLE"
	FilterSubs     = "SUBS"
	FilterSoftware = "SOFTWARE"
)

// Filter narrows products by free-text query and category filter. Pure and
// deterministic: catalog order is preserved, no input is mutated, and an
// empty result is a valid outcome.
func Filter(products []Product, query, category string) []Product {
	items := products
	if q := strings.TrimSpace(query); q != "" {
		q = strings.ToLower(q)
		matched := make([]Product, 0, len(items))
		for _, p := range items {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q) ||
				strings.Contains(strings.ToLower(p.Platform), q) {
				matched = append(matched, p)
			}
		}
		items = matched
	}

	if category == "" || category == FilterAll {
		out := make([]Product, len(items))
		copy(out, items)
		return out
	}

	out := make([]Product, 0, len(items))
	for _, p := range items {
		if matchesCategory(p, category) {
			out = append(out, p)
		}
	}
	return out
}

// matchesCategory is a static lookup, not business logic: each filter value
// maps to a fixed set of category/platform labels.
func matchesCategory(p Product, filter string) bool {
	cat := strings.ToUpper(p.Category)
	plat := strings.ToUpper(p.Platform)

	switch filter {
	case FilterMobile:
		return cat == "MOBILE" || plat == "ANDROID" || plat == "IOS"
	case FilterPC:
		return plat == "RIOT GAMES" || plat == "STEAM" || plat == "BLIZZARD" ||
			cat == "GAME KEY" || cat == "TOP-UP"
	case FilterConsole:
		return plat == "PLAYSTATION" || plat == "XBOX" || plat == "NINTENDO"
	case FilterSubs:
		return cat == "SUBSCRIPTION" || cat == "GIFT CARD"
	case FilterSoftware:
		return cat == "SOFTWARE" || plat == "MICROSOFT" || plat == "ANTIVIRUS"
	default:
		return true
	}
}
