package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/model"
)

// Snapshot caching: the last successful fetch of each backend collection is
// kept as JSON in the state database so read commands degrade to stale data
// when the backend is unreachable.

func SaveCatalogCache(sqldb *sql.DB, kind string, entries []model.CatalogEntry, fetchedAt time.Time) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", kind, err)
	}
	_, err = sqldb.Exec(`
INSERT INTO catalog_cache(kind, payload, fetched_at) VALUES(?, ?, ?)
ON CONFLICT(kind) DO UPDATE SET payload=excluded.payload, fetched_at=excluded.fetched_at
`, kind, string(payload), fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("save %s cache: %w", kind, err)
	}
	return nil
}

func LoadCatalogCache(sqldb *sql.DB, kind string) ([]model.CatalogEntry, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := sqldb.QueryRow(`SELECT payload, fetched_at FROM catalog_cache WHERE kind = ?`, kind).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, fmt.Errorf("no cached %s snapshot; run 'fresh sync' while online", kind)
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load %s cache: %w", kind, err)
	}
	var entries []model.CatalogEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode %s cache: %w", kind, err)
	}
	return entries, fetchedAt, nil
}

func SaveItemCache(sqldb *sql.DB, items []model.FoodItem, fetchedAt time.Time) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode item cache: %w", err)
	}
	_, err = sqldb.Exec(`
INSERT INTO item_cache(id, payload, fetched_at) VALUES(1, ?, ?)
ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, fetched_at=excluded.fetched_at
`, string(payload), fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("save item cache: %w", err)
	}
	return nil
}

func LoadItemCache(sqldb *sql.DB) ([]model.FoodItem, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := sqldb.QueryRow(`SELECT payload, fetched_at FROM item_cache WHERE id = 1`).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, fmt.Errorf("no cached inventory snapshot; run 'fresh sync' while online")
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load item cache: %w", err)
	}
	var items []model.FoodItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode item cache: %w", err)
	}
	return items, fetchedAt, nil
}

func SaveShoppingCache(sqldb *sql.DB, items []model.ShoppingItem, fetchedAt time.Time) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode shopping cache: %w", err)
	}
	_, err = sqldb.Exec(`
INSERT INTO shopping_cache(id, payload, fetched_at) VALUES(1, ?, ?)
ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, fetched_at=excluded.fetched_at
`, string(payload), fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("save shopping cache: %w", err)
	}
	return nil
}

func LoadShoppingCache(sqldb *sql.DB) ([]model.ShoppingItem, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := sqldb.QueryRow(`SELECT payload, fetched_at FROM shopping_cache WHERE id = 1`).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, fmt.Errorf("no cached shopping snapshot; run 'fresh sync' while online")
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load shopping cache: %w", err)
	}
	var items []model.ShoppingItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode shopping cache: %w", err)
	}
	return items, fetchedAt, nil
}
