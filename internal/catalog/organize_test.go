package catalog_test

import (
	"reflect"
	"testing"

	"github.com/123ang/expiry-alert-cli/internal/catalog"
	"github.com/123ang/expiry-alert-cli/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func resolved(id, name, section string, customization *bool) catalog.Resolved {
	e := model.CatalogEntry{ID: id, Name: name, IsDefault: customization == nil || !*customization, IsCustomization: customization}
	if section != "" {
		e.Section = &section
	}
	return catalog.Resolved{Entry: e, DisplayName: name}
}

func sectionKeys(sections []catalog.Section) []string {
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}
	return keys
}

func TestOrganizeInOrderKeepsNonAdjacentRunsSeparate(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Fruits", "Kitchen", nil),
		resolved("2", "Dairy", "Kitchen", nil),
		resolved("3", "Vitamins", "Health", nil),
		resolved("4", "Snacks", "Kitchen", nil),
	}
	sections := catalog.OrganizeInOrder(entries)
	want := []string{"Kitchen", "Health", "Kitchen"}
	if !reflect.DeepEqual(sectionKeys(sections), want) {
		t.Fatalf("expected section runs %v, got %v", want, sectionKeys(sections))
	}
	if len(sections[0].Items) != 2 || len(sections[1].Items) != 1 || len(sections[2].Items) != 1 {
		t.Fatalf("unexpected run sizes: %+v", sections)
	}
}

func TestOrganizeInOrderPreservesArrivalOrder(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		resolved("2", "Dairy", "", nil),
	}
	sections := catalog.OrganizeInOrder(entries)
	if len(sections) != 1 {
		t.Fatalf("expected one section, got %d", len(sections))
	}
	if sections[0].Items[0].DisplayName != "Fruits" || sections[0].Items[1].DisplayName != "Dairy" {
		t.Fatalf("arrival order not preserved: %+v", sections[0].Items)
	}
}

func TestReclassifyCustomizeSectionAlwaysFirst(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		resolved("2", "My Shelf", "", boolPtr(true)),
	}
	sections := catalog.Reclassify(entries)
	if sections[0].Key != catalog.SectionCustomize {
		t.Fatalf("expected customize first, got %q", sections[0].Key)
	}
	if len(sections[0].Items) != 1 || sections[0].Items[0].DisplayName != "My Shelf" {
		t.Fatalf("customization entry not pulled into customize section: %+v", sections[0].Items)
	}

	// Empty customize section still renders first.
	sections = catalog.Reclassify([]catalog.Resolved{resolved("1", "Fruits", "", nil)})
	if sections[0].Key != catalog.SectionCustomize || len(sections[0].Items) != 0 {
		t.Fatalf("expected empty customize section first, got %+v", sections[0])
	}
}

func TestReclassifyDerivesCustomizationFromIsDefault(t *testing.T) {
	t.Parallel()

	// Backward compatibility: no is_customization flag, is_default false.
	e := model.CatalogEntry{ID: "1", Name: "Homebrew", IsDefault: false}
	sections := catalog.Reclassify([]catalog.Resolved{{Entry: e, DisplayName: "Homebrew"}})
	if len(sections[0].Items) != 1 {
		t.Fatalf("expected derived customization entry in customize section, got %+v", sections)
	}
}

func TestReclassifySplitsFoodAndBeverages(t *testing.T) {
	t.Parallel()

	drinkKey := "category_beverages"
	entries := []catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		{Entry: model.CatalogEntry{ID: "2", Name: "Beverages", IsDefault: true, TranslationKey: &drinkKey}, DisplayName: "Beverages"},
		resolved("3", "Juice Boxes", "Other", nil),
		resolved("4", "Snacks", "Food & Drinks", nil),
		resolved("5", "Vitamins", "Health", nil),
	}
	sections := catalog.Reclassify(entries)
	want := []string{catalog.SectionCustomize, catalog.SectionFood, catalog.SectionBeverages, "Health"}
	if !reflect.DeepEqual(sectionKeys(sections), want) {
		t.Fatalf("expected sections %v, got %v", want, sectionKeys(sections))
	}

	var food, beverages []string
	for _, r := range sections[1].Items {
		food = append(food, r.DisplayName)
	}
	for _, r := range sections[2].Items {
		beverages = append(beverages, r.DisplayName)
	}
	if !reflect.DeepEqual(food, []string{"Fruits", "Snacks"}) {
		t.Fatalf("unexpected food section: %v", food)
	}
	if !reflect.DeepEqual(beverages, []string{"Beverages", "Juice Boxes"}) {
		t.Fatalf("unexpected beverages section: %v", beverages)
	}
}

func TestReclassifyPassThroughSectionsKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Vitamins", "Health", nil),
		resolved("2", "Soap", "Household", nil),
		resolved("3", "Bandages", "Health", nil),
	}
	sections := catalog.Reclassify(entries)
	want := []string{catalog.SectionCustomize, "Health", "Household"}
	if !reflect.DeepEqual(sectionKeys(sections), want) {
		t.Fatalf("expected sections %v, got %v", want, sectionKeys(sections))
	}
	if len(sections[1].Items) != 2 {
		t.Fatalf("expected non-adjacent Health entries merged in reclassify mode, got %+v", sections[1].Items)
	}
}

func TestDedupeByDisplayNameKeepsFirstAndIsIdempotent(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		resolved("2", "Fruits", "", nil),
		resolved("3", "Dairy", "", nil),
	}
	once := catalog.DedupeByDisplayName(entries)
	if len(once) != 2 || once[0].Entry.ID != "1" || once[1].Entry.ID != "3" {
		t.Fatalf("unexpected dedupe result: %+v", once)
	}
	twice := catalog.DedupeByDisplayName(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterSectionsKeepsCustomizeWithZeroMatches(t *testing.T) {
	t.Parallel()

	sections := catalog.Reclassify([]catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		resolved("2", "My Shelf", "", boolPtr(true)),
	})
	filtered := catalog.FilterSections(sections, "fru")
	if filtered[0].Key != catalog.SectionCustomize || len(filtered[0].Items) != 0 {
		t.Fatalf("customize section must survive filtering: %+v", filtered)
	}
	if len(filtered) != 2 || len(filtered[1].Items) != 1 || filtered[1].Items[0].DisplayName != "Fruits" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}

	// Case-insensitive substring match.
	filtered = catalog.FilterSections(sections, "FRUITS")
	if len(filtered[1].Items) != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", filtered)
	}
}

func TestSelectionCounts(t *testing.T) {
	t.Parallel()

	entries := []catalog.Resolved{
		resolved("1", "Fruits", "", nil),
		resolved("2", "Dairy", "", nil),
		resolved("3", "Snacks", "", nil),
	}
	sel := catalog.Selection{}
	sel.SelectAll(entries)
	sec := catalog.Section{Key: catalog.SectionFood, Items: entries}
	if selected, total := sel.SectionCounts(sec); selected != 3 || total != 3 {
		t.Fatalf("expected 3/3 after select all, got %d/%d", selected, total)
	}
	sel.DeselectAll(entries[:1])
	if selected, total := sel.SectionCounts(sec); selected != 2 || total != 3 {
		t.Fatalf("expected 2/3 after single deselect, got %d/%d", selected, total)
	}
	sel.DeselectAll(entries)
	if selected, _ := sel.SectionCounts(sec); selected != 0 {
		t.Fatalf("expected 0 selected after deselect all, got %d", selected)
	}
}
