package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/catalog"
	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/model"
)

const (
	KindCategory = "category"
	KindLocation = "location"
)

// FetchCatalog returns the freshest catalog snapshot available: the backend
// when reachable (refreshing the cache), otherwise the cached snapshot.
// The returned bool reports whether the data came from the cache.
func FetchCatalog(ctx context.Context, sqldb *sql.DB, client *api.Client, kind string) ([]model.CatalogEntry, bool, error) {
	var entries []model.CatalogEntry
	var err error
	if kind == KindLocation {
		entries, err = client.ListLocations(ctx)
	} else {
		entries, err = client.ListCategories(ctx)
	}
	if err == nil {
		if cacheErr := SaveCatalogCache(sqldb, kind, entries, time.Now()); cacheErr != nil {
			return nil, false, cacheErr
		}
		return entries, false, nil
	}

	cached, _, cacheErr := LoadCatalogCache(sqldb, kind)
	if cacheErr != nil {
		// No cache to fall back to; the fetch error is the useful one.
		return nil, false, err
	}
	return cached, true, nil
}

// CatalogOptions selects how a catalog list is organized for display.
type CatalogOptions struct {
	// Manage renders the management view: reclassified sections with the
	// synthetic Customize section first.
	Manage bool
	// Grouped merges the fridge compartments under one label; only
	// meaningful for locations, and never used for editable lists.
	Grouped bool
	Search  string
}

// OrganizeCatalog turns a raw snapshot into resolved, deduplicated, ordered
// sections ready for rendering.
func OrganizeCatalog(entries []model.CatalogEntry, kind string, tr i18n.Table, opts CatalogOptions) []catalog.Section {
	resolveKind := catalog.KindCategory
	if kind == KindLocation {
		resolveKind = catalog.KindLocation
	}

	resolved := catalog.ResolveAll(entries, resolveKind, tr)
	if opts.Grouped && kind == KindLocation {
		for i := range resolved {
			resolved[i].DisplayName = catalog.ResolveLocationGroupName(resolved[i].Entry, tr)
		}
	}
	resolved = catalog.DedupeByDisplayName(resolved)

	var sections []catalog.Section
	if opts.Manage {
		sections = catalog.Reclassify(resolved)
	} else {
		sections = catalog.OrganizeInOrder(resolved)
	}
	return catalog.FilterSections(sections, opts.Search)
}

// SectionTitle localizes a section key for display. Normalized keys map to
// translation-table entries; backend pass-through labels render as-is.
func SectionTitle(key string, tr i18n.Table) string {
	switch key {
	case catalog.SectionCustomize:
		return tr.Get("section_customize")
	case catalog.SectionFood:
		return tr.Get("section_food")
	case catalog.SectionBeverages:
		return tr.Get("section_beverages")
	case catalog.SectionOther, "":
		return tr.Get("section_other")
	}
	return key
}
