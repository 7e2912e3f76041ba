package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/model"
)

// FetchShoppingItems returns the shopping/wish list, falling back to the
// cache when the backend is unreachable.
func FetchShoppingItems(ctx context.Context, sqldb *sql.DB, client *api.Client) ([]model.ShoppingItem, bool, error) {
	items, err := client.ListShoppingItems(ctx)
	if err == nil {
		if cacheErr := SaveShoppingCache(sqldb, items, time.Now()); cacheErr != nil {
			return nil, false, cacheErr
		}
		return items, false, nil
	}

	cached, _, cacheErr := LoadShoppingCache(sqldb)
	if cacheErr != nil {
		return nil, false, err
	}
	return cached, true, nil
}
