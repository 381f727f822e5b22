package models

import (
	"github.com/shopspring/decimal"
)

// Bar represents one OHLCV bar as serialized by the backend. Field names on
// the wire are capitalized because the backend emits pandas column names.
type Bar struct {
	Date   string          `json:"Date"`
	Open   decimal.Decimal `json:"Open"`
	High   decimal.Decimal `json:"High"`
	Low    decimal.Decimal `json:"Low"`
	Close  decimal.Decimal `json:"Close"`
	Volume int64           `json:"Volume"`
}

// StockData is the full quote-plus-history payload for a symbol.
type StockData struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name,omitempty"`
	Sector        string          `json:"sector,omitempty"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PreviousClose decimal.Decimal `json:"previous_close,omitempty"`
	MarketCap     int64           `json:"market_cap,omitempty"`
	PERatio       float64         `json:"pe_ratio,omitempty"`
	Data          []Bar           `json:"data"`
}

// SymbolInfo is one entry from the symbol catalog.
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector,omitempty"`
}

// SearchResult is a symbol match, enriched with a live price when the
// backend could fetch one.
type SearchResult struct {
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Sector       string           `json:"sector,omitempty"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
}

// SectorInfo is one entry from the sector catalog.
type SectorInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Periods accepted by the stock data endpoint.
const (
	Period5D      = "5d"
	Period1M      = "1mo"
	Period3M      = "3mo"
	Period6M      = "6mo"
	Period1Y      = "1y"
	Period2Y      = "2y"
	Period5Y      = "5y"
	DefaultPeriod = Period1Y
)
