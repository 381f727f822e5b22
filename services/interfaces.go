package services

import (
	"context"

	"github.com/stockai/stockai-go/models"
)

// AuthAPI defines the authentication operations
type AuthAPI interface {
	Signup(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout()
	Me(ctx context.Context) (*models.User, error)
	UpdatePassword(ctx context.Context, newPassword string) (string, error)
	IsAuthenticated() bool
}

// StockAPI defines the stock data operations
type StockAPI interface {
	GetStockData(ctx context.Context, symbol, period string) (*models.StockData, error)
	SearchStocks(ctx context.Context, query string) ([]models.SearchResult, error)
	GetSymbols(ctx context.Context, sector, search string) ([]models.SymbolInfo, error)
	GetSectors(ctx context.Context) ([]models.SectorInfo, error)
}

// PredictionAPI defines the ML prediction operations
type PredictionAPI interface {
	Predict(ctx context.Context, symbol string, modelType models.ModelType) (*models.Prediction, error)
	GetPredictionHistory(ctx context.Context) ([]models.PredictionRecord, error)
}

// WatchlistAPI defines the watchlist operations
type WatchlistAPI interface {
	GetWatchlist(ctx context.Context) ([]models.WatchlistItem, error)
	AddToWatchlist(ctx context.Context, symbol, companyName string) (*models.WatchlistAddResult, error)
	RemoveFromWatchlist(ctx context.Context, itemID string) (string, error)
}

// ChatAPI defines the AI assistant operations
type ChatAPI interface {
	SendMessage(ctx context.Context, message string) (string, error)
	GetChatHistory(ctx context.Context) ([]models.ChatMessage, error)
}

// HealthAPI defines the backend health operations
type HealthAPI interface {
	CheckHealth(ctx context.Context) bool
	Health(ctx context.Context) (*models.HealthReport, error)
	GetDBInfo(ctx context.Context) (*models.DBInfo, error)
}

// Compile-time interface verification
var _ AuthAPI = (*Client)(nil)
var _ StockAPI = (*Client)(nil)
var _ PredictionAPI = (*Client)(nil)
var _ WatchlistAPI = (*Client)(nil)
var _ ChatAPI = (*Client)(nil)
var _ HealthAPI = (*Client)(nil)
