package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
)

// SyncResult reports how many records each collection fetched.
type SyncResult struct {
	Categories int
	Locations  int
	Items      int
	Shopping   int
}

// Sync refreshes every cached snapshot from the backend. Unlike the read
// paths this does not fall back to the cache; a sync that cannot reach the
// backend is an error.
func Sync(ctx context.Context, sqldb *sql.DB, client *api.Client) (SyncResult, error) {
	var result SyncResult

	categories, err := client.ListCategories(ctx)
	if err != nil {
		return result, err
	}
	if err := SaveCatalogCache(sqldb, KindCategory, categories, time.Now()); err != nil {
		return result, err
	}
	result.Categories = len(categories)

	locations, err := client.ListLocations(ctx)
	if err != nil {
		return result, err
	}
	if err := SaveCatalogCache(sqldb, KindLocation, locations, time.Now()); err != nil {
		return result, err
	}
	result.Locations = len(locations)

	items, err := client.ListFoodItems(ctx)
	if err != nil {
		return result, err
	}
	if err := SaveItemCache(sqldb, items, time.Now()); err != nil {
		return result, err
	}
	result.Items = len(items)

	shopping, err := client.ListShoppingItems(ctx)
	if err != nil {
		return result, err
	}
	if err := SaveShoppingCache(sqldb, shopping, time.Now()); err != nil {
		return result, err
	}
	result.Shopping = len(shopping)

	return result, nil
}
