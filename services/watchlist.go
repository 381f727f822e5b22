package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockai/stockai-go/models"
)

// GetWatchlist returns the caller's watchlist, enriched with current prices
// where the backend could fetch them. Requires a valid session.
func (c *Client) GetWatchlist(ctx context.Context) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := c.do(ctx, "watchlist_list", http.MethodGet, "/api/watchlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWatchlist tracks a symbol for the caller. Adding a symbol that is
// already tracked fails with the DUPLICATE condition; test with IsDuplicate
// rather than treating it as a generic failure.
func (c *Client) AddToWatchlist(ctx context.Context, symbol, companyName string) (*models.WatchlistAddResult, error) {
	payload := map[string]string{
		"symbol":       symbol,
		"company_name": companyName,
	}

	var result models.WatchlistAddResult
	if err := c.do(ctx, "watchlist_add", http.MethodPost, "/api/watchlist", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveFromWatchlist deletes a watchlist entry by id. Entries owned by
// other users are invisible to the caller and removing them reports not
// found.
func (c *Client) RemoveFromWatchlist(ctx context.Context, itemID string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "watchlist_remove", http.MethodDelete, "/api/watchlist/"+url.PathEscape(itemID), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
