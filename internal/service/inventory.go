package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/expiry"
	"github.com/123ang/expiry-alert-cli/internal/model"
)

// FetchItems returns the freshest inventory snapshot available, falling
// back to the cache when the backend is unreachable.
func FetchItems(ctx context.Context, sqldb *sql.DB, client *api.Client) ([]model.FoodItem, bool, error) {
	items, err := client.ListFoodItems(ctx)
	if err == nil {
		if cacheErr := SaveItemCache(sqldb, items, time.Now()); cacheErr != nil {
			return nil, false, cacheErr
		}
		return items, false, nil
	}

	cached, _, cacheErr := LoadItemCache(sqldb)
	if cacheErr != nil {
		return nil, false, err
	}
	return cached, true, nil
}

// ClassifyInventory derives the expiry view of a snapshot for the given
// moment and timezone, plus its aggregate counts.
func ClassifyInventory(items []model.FoodItem, now time.Time, loc *time.Location) ([]model.ClassifiedItem, model.Counts) {
	classified := expiry.ClassifyAll(items, now, loc)
	return classified, expiry.Count(classified)
}

// ExpiringOnly filters a classified snapshot down to the items needing
// attention, preserving order.
func ExpiringOnly(items []model.ClassifiedItem) []model.ClassifiedItem {
	out := make([]model.ClassifiedItem, 0, len(items))
	for _, item := range items {
		if item.State == model.Expired || item.State == model.ExpiringSoon {
			out = append(out, item)
		}
	}
	return out
}
