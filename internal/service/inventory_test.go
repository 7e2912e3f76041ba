package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/model"
	"github.com/123ang/expiry-alert-cli/internal/service"
)

func TestFetchItemsFallsBackToCacheWhenOffline(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	defer sqldb.Close()

	seed := []model.FoodItem{{ID: "f1", Name: "Milk", ExpiryDate: "2025-03-01"}}
	if err := service.SaveItemCache(sqldb, seed, time.Now()); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := &api.Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	items, fromCache, err := service.FetchItems(context.Background(), sqldb, client)
	if err != nil {
		t.Fatalf("fetch items: %v", err)
	}
	if !fromCache || len(items) != 1 || items[0].Name != "Milk" {
		t.Fatalf("unexpected fallback result: fromCache=%t items=%+v", fromCache, items)
	}
}

func TestClassifyInventoryCountsMatchStates(t *testing.T) {
	t.Parallel()

	loc := time.UTC
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, loc)
	items := []model.FoodItem{
		{ID: "f1", Name: "Old Yogurt", ExpiryDate: "2025-06-08"},
		{ID: "f2", Name: "Milk", ExpiryDate: "2025-06-10"},
		{ID: "f3", Name: "Cheese", ExpiryDate: "2025-06-13"},
		{ID: "f4", Name: "Canned Beans", ExpiryDate: "2025-12-01"},
		{ID: "f5", Name: "Honey", ExpiryDate: ""},
	}
	classified, counts := service.ClassifyInventory(items, now, loc)
	if counts.Total != 5 || counts.Expired != 2 || counts.ExpiringSoon != 1 || counts.Fresh != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}

	attention := service.ExpiringOnly(classified)
	if len(attention) != 3 {
		t.Fatalf("expected 3 items needing attention, got %d", len(attention))
	}
	if attention[0].ID != "f1" || attention[1].ID != "f2" || attention[2].ID != "f3" {
		t.Fatalf("attention list out of order: %+v", attention)
	}
}

func TestCheckReminderFiresOncePerDay(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	defer sqldb.Close()

	loc := time.UTC
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, loc)

	fired, err := service.CheckReminder(sqldb, 3, now, loc)
	if err != nil {
		t.Fatalf("first reminder check: %v", err)
	}
	if !fired {
		t.Fatalf("expected reminder to fire with expired items")
	}

	// A later check the same day, even with more expired items, stays quiet.
	later := now.Add(6 * time.Hour)
	fired, err = service.CheckReminder(sqldb, 7, later, loc)
	if err != nil {
		t.Fatalf("second reminder check: %v", err)
	}
	if fired {
		t.Fatalf("reminder fired twice on the same day")
	}

	nextDay := now.AddDate(0, 0, 1)
	fired, err = service.CheckReminder(sqldb, 1, nextDay, loc)
	if err != nil {
		t.Fatalf("next-day reminder check: %v", err)
	}
	if !fired {
		t.Fatalf("expected reminder to fire on the next day")
	}
}

func TestCacheRoundTrips(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	defer sqldb.Close()

	items := []model.FoodItem{{ID: "f1", Name: "Milk", Quantity: 2, ExpiryDate: "2025-03-01T23:50:00Z"}}
	if err := service.SaveItemCache(sqldb, items, time.Now()); err != nil {
		t.Fatalf("save item cache: %v", err)
	}
	loaded, _, err := service.LoadItemCache(sqldb)
	if err != nil {
		t.Fatalf("load item cache: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ExpiryDate != "2025-03-01T23:50:00Z" {
		t.Fatalf("item cache round trip mangled data: %+v", loaded)
	}

	shopping := []model.ShoppingItem{{ID: "s1", Name: "Eggs", Quantity: 12, Wish: true}}
	if err := service.SaveShoppingCache(sqldb, shopping, time.Now()); err != nil {
		t.Fatalf("save shopping cache: %v", err)
	}
	loadedShopping, _, err := service.LoadShoppingCache(sqldb)
	if err != nil {
		t.Fatalf("load shopping cache: %v", err)
	}
	if len(loadedShopping) != 1 || !loadedShopping[0].Wish {
		t.Fatalf("shopping cache round trip mangled data: %+v", loadedShopping)
	}
}
