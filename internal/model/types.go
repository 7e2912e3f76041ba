package model

// CatalogEntry is a category or storage location as returned by the backend
// list endpoints. Seeded defaults carry a translation key; user-created
// entries usually carry only a raw name.
type CatalogEntry struct {
	ID              string  `json:"id"`
	GroupID         *string `json:"group_id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon"`
	TranslationKey  *string `json:"translation_key"`
	IsDefault       bool    `json:"is_default"`
	IsCustomization *bool   `json:"is_customization"`
	Section         *string `json:"section"`
	SortOrder       *int    `json:"sort_order"`
}

// Customization reports whether the entry is user-owned and therefore
// editable. Older backend rows predate the is_customization column; for
// those the flag is derived from is_default.
func (e CatalogEntry) Customization() bool {
	if e.IsCustomization != nil {
		return *e.IsCustomization
	}
	return !e.IsDefault
}

// SectionValue returns the raw section label, empty when absent.
func (e CatalogEntry) SectionValue() string {
	if e.Section == nil {
		return ""
	}
	return *e.Section
}

// FoodItem is an inventory record as returned by the backend. ExpiryDate is
// kept as the raw string the backend sent; the expiry package derives the
// calendar day from it on every read.
type FoodItem struct {
	ID           string  `json:"id"`
	GroupID      *string `json:"group_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	ExpiryDate   string  `json:"expiry_date"`
	CategoryID   string  `json:"category_id"`
	LocationID   string  `json:"location_id"`
	CategoryName string  `json:"category_name"`
	LocationName string  `json:"location_name"`
	Notes        string  `json:"notes,omitempty"`
}

// FreshnessState buckets an item by days until expiry.
type FreshnessState string

const (
	Fresh        FreshnessState = "fresh"
	ExpiringSoon FreshnessState = "expiring_soon"
	Expired      FreshnessState = "expired"
)

func (s FreshnessState) String() string { return string(s) }

// ClassifiedItem is a FoodItem with its derived expiry fields. The derived
// fields are never persisted; they are recomputed for the viewer's timezone
// on every read.
type ClassifiedItem struct {
	FoodItem
	LocalExpiryDay string
	DaysUntil      int
	State          FreshnessState
}

// Counts is the aggregate freshness partition for a collection of items.
// Total always equals Fresh + ExpiringSoon + Expired.
type Counts struct {
	Total        int
	Fresh        int
	ExpiringSoon int
	Expired      int
}

// ShoppingItem is a shopping/wish-list row; the client passes these through
// to the backend without any local logic.
type ShoppingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Done     bool   `json:"done"`
	Wish     bool   `json:"wish"`
}
