package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockai/stockai-go/models"
)

// GetStockData fetches the quote and OHLCV history for a symbol. An empty
// period defaults to one year.
func (c *Client) GetStockData(ctx context.Context, symbol, period string) (*models.StockData, error) {
	if period == "" {
		period = models.DefaultPeriod
	}

	params := url.Values{}
	params.Set("period", period)
	path := "/api/get_stock_data/" + url.PathEscape(symbol) + "?" + params.Encode()

	var data models.StockData
	if err := c.do(ctx, "get_stock_data", http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SearchStocks searches the symbol catalog by name or ticker. The first few
// matches come back enriched with a live price when the backend has one.
func (c *Client) SearchStocks(ctx context.Context, query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	if err := c.do(ctx, "search", http.MethodGet, "/api/search/"+url.PathEscape(query), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetSymbols lists known symbols, optionally filtered by sector or a search
// term. Both filters empty returns the full catalog.
func (c *Client) GetSymbols(ctx context.Context, sector, search string) ([]models.SymbolInfo, error) {
	params := url.Values{}
	if sector != "" {
		params.Set("sector", sector)
	}
	if search != "" {
		params.Set("search", search)
	}

	path := "/api/symbols"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var symbols []models.SymbolInfo
	if err := c.do(ctx, "symbols", http.MethodGet, path, nil, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// GetSectors lists the available sectors with their symbol counts.
func (c *Client) GetSectors(ctx context.Context) ([]models.SectorInfo, error) {
	var sectors []models.SectorInfo
	if err := c.do(ctx, "sectors", http.MethodGet, "/api/sectors", nil, &sectors); err != nil {
		return nil, err
	}
	return sectors, nil
}
