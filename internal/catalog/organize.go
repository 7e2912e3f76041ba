package catalog

import "strings"

// Normalized section keys produced by Reclassify. Pass-through sections keep
// their backend label as the key.
const (
	SectionCustomize = "customize"
	SectionFood      = "food"
	SectionBeverages = "beverages"
	SectionOther     = "other"
)

// Section is one named display grouping of resolved entries.
type Section struct {
	Key   string
	Items []Resolved
}

// OrganizeInOrder groups consecutive runs sharing the same section label
// into ordered sections, preserving arrival order. This is run-length
// grouping, not a sort: the same label appearing in two non-adjacent runs
// yields two sections. The backend pre-orders default catalogs by
// section and sort order, so a single pass suffices.
func OrganizeInOrder(entries []Resolved) []Section {
	sections := make([]Section, 0)
	for _, r := range entries {
		label := r.Entry.SectionValue()
		if n := len(sections); n > 0 && sections[n-1].Key == label {
			sections[n-1].Items = append(sections[n-1].Items, r)
			continue
		}
		sections = append(sections, Section{Key: label, Items: []Resolved{r}})
	}
	return sections
}

// drinkTokens marks an entry as a beverage when its translation key or name
// contains one of these.
var drinkTokens = []string{"beverage", "drink", "juice", "soda", "tea", "coffee", "wine", "beer"}

func isDrink(r Resolved) bool {
	if r.Entry.TranslationKey != nil {
		key := strings.ToLower(*r.Entry.TranslationKey)
		for _, tok := range drinkTokens {
			if strings.Contains(key, tok) {
				return true
			}
		}
	}
	name := strings.ToLower(r.Entry.Name)
	for _, tok := range drinkTokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

// Reclassify computes a normalized section per entry independently of
// backend order, for the management screens. User-owned entries go to a
// synthetic Customize section that is always first, even when empty.
// Entries whose section is blank, "Other", or "Food & Drinks" are split
// into Food vs Beverages; any other section passes through unchanged, in
// first-seen order after Food and Beverages.
func Reclassify(entries []Resolved) []Section {
	customize := Section{Key: SectionCustomize, Items: []Resolved{}}
	food := Section{Key: SectionFood, Items: []Resolved{}}
	beverages := Section{Key: SectionBeverages, Items: []Resolved{}}

	var rest []Section
	restIndex := map[string]int{}

	for _, r := range entries {
		if r.Entry.Customization() {
			customize.Items = append(customize.Items, r)
			continue
		}
		label := strings.TrimSpace(r.Entry.SectionValue())
		switch strings.ToLower(label) {
		case "", "other", "food & drinks":
			if isDrink(r) {
				beverages.Items = append(beverages.Items, r)
			} else {
				food.Items = append(food.Items, r)
			}
		default:
			i, ok := restIndex[label]
			if !ok {
				i = len(rest)
				restIndex[label] = i
				rest = append(rest, Section{Key: label})
			}
			rest[i].Items = append(rest[i].Items, r)
		}
	}

	out := []Section{customize}
	if len(food.Items) > 0 {
		out = append(out, food)
	}
	if len(beverages.Items) > 0 {
		out = append(out, beverages)
	}
	return append(out, rest...)
}

// DedupeByDisplayName collapses entries whose resolved display name is
// identical, keeping the first occurrence in input order. Legacy seed data
// contains duplicate rows across languages that resolve to the same label.
func DedupeByDisplayName(entries []Resolved) []Resolved {
	seen := make(map[string]bool, len(entries))
	out := make([]Resolved, 0, len(entries))
	for _, r := range entries {
		if seen[r.DisplayName] {
			continue
		}
		seen[r.DisplayName] = true
		out = append(out, r)
	}
	return out
}

// FilterSections applies case-insensitive substring search over resolved
// display names. Sections with no matches are dropped, except the synthetic
// Customize section, which is always rendered even with zero matches.
func FilterSections(sections []Section, query string) []Section {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sections
	}
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		matched := make([]Resolved, 0, len(sec.Items))
		for _, r := range sec.Items {
			if strings.Contains(strings.ToLower(r.DisplayName), query) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 && sec.Key != SectionCustomize {
			continue
		}
		out = append(out, Section{Key: sec.Key, Items: matched})
	}
	return out
}

// Selection is an optional per-entry inclusion set layered on top of the
// organized sections, used for "include in pickers" toggles.
type Selection map[string]bool

// SelectAll marks every entry in the deduplicated set as selected.
func (s Selection) SelectAll(entries []Resolved) {
	for _, r := range entries {
		s[r.Entry.ID] = true
	}
}

// DeselectAll clears every entry in the deduplicated set.
func (s Selection) DeselectAll(entries []Resolved) {
	for _, r := range entries {
		delete(s, r.Entry.ID)
	}
}

// SectionCounts returns the selected and total counts for one section.
func (s Selection) SectionCounts(sec Section) (selected, total int) {
	for _, r := range sec.Items {
		if s[r.Entry.ID] {
			selected++
		}
	}
	return selected, len(sec.Items)
}
