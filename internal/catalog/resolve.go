package catalog

import (
	"strings"

	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/model"
)

// Kind selects which static fallback table applies during name resolution.
type Kind int

const (
	KindCategory Kind = iota
	KindLocation
)

// categoryKeyByName maps lowered default category names, and the pre-slash
// half of compound names, to translation keys. Legacy seed rows predate
// translation keys and only carry these English names.
var categoryKeyByName = map[string]string{
	"fruits":                  "category_fruits",
	"vegetables":              "category_vegetables",
	"dairy":                   "category_dairy",
	"meat / seafood":          "category_meat_seafood",
	"meat":                    "category_meat_seafood",
	"cooked food / leftovers": "category_cooked_food_leftovers",
	"cooked food":             "category_cooked_food_leftovers",
	"beverages":               "category_beverages",
	"snacks":                  "category_snacks",
	"frozen":                  "category_frozen",
	"condiments":              "category_condiments",
	"grains":                  "category_grains",
	"canned food":             "category_canned_food",
	"bakery":                  "category_bakery",
	"eggs":                    "category_eggs",
	"supplements":             "category_supplements",
	"other":                   "category_other",
}

var locationKeyByName = map[string]string{
	"fridge":           "location_fridge",
	"fridge - main":    "location_fridge_main",
	"fridge - door":    "location_fridge_door",
	"fridge - crisper": "location_fridge_crisper",
	"freezer":          "location_freezer",
	"pantry":           "location_pantry",
	"counter":          "location_counter",
	"cabinet":          "location_cabinet",
	"spice rack":       "location_spice_rack",
	"other":            "location_other",
}

// ResolveDisplayName maps a catalog entry to its localized display string.
// Resolution order: the entry's own translation key, then a static
// name-to-key table for legacy unkeyed rows, then the raw name. Compound
// default names ("Meat / Seafood") always render as the part before the
// first slash, in every language; this truncation intentionally also applies
// to user-entered names containing a literal slash.
func ResolveDisplayName(e model.CatalogEntry, kind Kind, tr i18n.Table) string {
	if e.TranslationKey != nil {
		key := strings.TrimSpace(*e.TranslationKey)
		if key != "" {
			if s, ok := tr.Lookup(key); ok {
				return beforeSlash(s)
			}
			return beforeSlash(e.Name)
		}
	}

	lowered := strings.ToLower(strings.TrimSpace(e.Name))
	table := categoryKeyByName
	if kind == KindLocation {
		table = locationKeyByName
	}
	key, ok := table[lowered]
	if !ok {
		if i := strings.Index(lowered, "/"); i >= 0 {
			key, ok = table[strings.TrimSpace(lowered[:i])]
		}
	}
	if ok {
		if s, found := tr.Lookup(key); found {
			return beforeSlash(s)
		}
	}
	return beforeSlash(e.Name)
}

// The grouped location view collapses the three fridge-compartment variants
// onto a single "Fridge" label, matched by translation key or, for legacy
// rows, by exact lowered name.
var fridgeCompartmentKeys = map[string]bool{
	"location_fridge_main":    true,
	"location_fridge_door":    true,
	"location_fridge_crisper": true,
}

var fridgeCompartmentNames = map[string]bool{
	"fridge - main":    true,
	"fridge - door":    true,
	"fridge - crisper": true,
}

// ResolveLocationGroupName is ResolveDisplayName for the grouped/merged
// location view: the fridge compartments share one label so their items
// merge under a single heading. Editable location lists never use this.
func ResolveLocationGroupName(e model.CatalogEntry, tr i18n.Table) string {
	if e.TranslationKey != nil && fridgeCompartmentKeys[strings.TrimSpace(*e.TranslationKey)] {
		return fridgeLabel(tr)
	}
	if fridgeCompartmentNames[strings.ToLower(strings.TrimSpace(e.Name))] {
		return fridgeLabel(tr)
	}
	return ResolveDisplayName(e, KindLocation, tr)
}

func fridgeLabel(tr i18n.Table) string {
	if s, ok := tr.Lookup("location_fridge"); ok {
		return beforeSlash(s)
	}
	return "Fridge"
}

func beforeSlash(s string) string {
	if i := strings.Index(s, "/"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// Resolved pairs a catalog entry with its resolved display name; the
// organizer and the UI layer consume these.
type Resolved struct {
	Entry       model.CatalogEntry
	DisplayName string
}

// ResolveAll resolves every entry in input order.
func ResolveAll(entries []model.CatalogEntry, kind Kind, tr i18n.Table) []Resolved {
	out := make([]Resolved, 0, len(entries))
	for _, e := range entries {
		out = append(out, Resolved{Entry: e, DisplayName: ResolveDisplayName(e, kind, tr)})
	}
	return out
}
