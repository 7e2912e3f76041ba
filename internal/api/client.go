// Package api is the REST client for the Expiry Alert backend. It moves
// records as-is: expiry dates stay raw strings and catalog names stay
// unresolved; localization and classification happen in the core packages
// over the snapshots this client returns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/model"
)

const defaultTimeout = 12 * time.Second

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}

func (c *Client) url(path string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return "", fmt.Errorf("backend url is not configured; run 'fresh config set --backend-url <url>'")
	}
	return base + path, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url, err := c.url(path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(raw))
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, snippet)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.CatalogEntry, error) {
	var entries []model.CatalogEntry
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) ListLocations(ctx context.Context) ([]model.CatalogEntry, error) {
	var entries []model.CatalogEntry
	if err := c.do(ctx, http.MethodGet, "/api/locations", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CatalogEntryInput is the writable subset of a catalog entry. Created
// entries are always user customizations; the backend seeds defaults.
type CatalogEntryInput struct {
	Name    string  `json:"name"`
	Icon    string  `json:"icon,omitempty"`
	Section *string `json:"section,omitempty"`
}

func catalogPath(kind string) string {
	if kind == "location" {
		return "/api/locations"
	}
	return "/api/categories"
}

func (c *Client) CreateCatalogEntry(ctx context.Context, kind string, input CatalogEntryInput) (model.CatalogEntry, error) {
	var entry model.CatalogEntry
	if err := c.do(ctx, http.MethodPost, catalogPath(kind), input, &entry); err != nil {
		return model.CatalogEntry{}, err
	}
	return entry, nil
}

func (c *Client) UpdateCatalogEntry(ctx context.Context, kind, id string, input CatalogEntryInput) error {
	return c.do(ctx, http.MethodPut, catalogPath(kind)+"/"+id, input, nil)
}

func (c *Client) DeleteCatalogEntry(ctx context.Context, kind, id string) error {
	return c.do(ctx, http.MethodDelete, catalogPath(kind)+"/"+id, nil, nil)
}

func (c *Client) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := c.do(ctx, http.MethodGet, "/api/food-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FoodItemInput is the writable subset of a food item. ExpiryDate passes
// through untouched; the backend stores whatever representation it prefers.
type FoodItemInput struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
	CategoryID string `json:"category_id,omitempty"`
	LocationID string `json:"location_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (c *Client) CreateFoodItem(ctx context.Context, input FoodItemInput) (model.FoodItem, error) {
	var item model.FoodItem
	if err := c.do(ctx, http.MethodPost, "/api/food-items", input, &item); err != nil {
		return model.FoodItem{}, err
	}
	return item, nil
}

func (c *Client) UpdateFoodItem(ctx context.Context, id string, input FoodItemInput) error {
	return c.do(ctx, http.MethodPut, "/api/food-items/"+id, input, nil)
}

func (c *Client) DeleteFoodItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/food-items/"+id, nil, nil)
}

func (c *Client) ListShoppingItems(ctx context.Context) ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	if err := c.do(ctx, http.MethodGet, "/api/shopping-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type ShoppingItemInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Wish     bool   `json:"wish"`
}

func (c *Client) AddShoppingItem(ctx context.Context, input ShoppingItemInput) (model.ShoppingItem, error) {
	var item model.ShoppingItem
	if err := c.do(ctx, http.MethodPost, "/api/shopping-items", input, &item); err != nil {
		return model.ShoppingItem{}, err
	}
	return item, nil
}

func (c *Client) SetShoppingItemDone(ctx context.Context, id string, done bool) error {
	return c.do(ctx, http.MethodPatch, "/api/shopping-items/"+id, map[string]bool{"done": done}, nil)
}

func (c *Client) DeleteShoppingItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/shopping-items/"+id, nil, nil)
}
