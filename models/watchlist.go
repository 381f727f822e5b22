package models

import (
	"github.com/shopspring/decimal"
)

// WatchlistItem is a tracked symbol owned by the backend and mirrored here.
// A user cannot hold duplicate symbols; the backend enforces uniqueness.
type WatchlistItem struct {
	ID           string           `json:"_id"`
	UserID       string           `json:"user_id"`
	Symbol       string           `json:"symbol"`
	CompanyName  string           `json:"company_name"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
	AddedAt      string           `json:"added_at"`
}

// WatchlistAddResult is returned when a symbol is added to the watchlist.
type WatchlistAddResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Symbol  string `json:"symbol"`
}
