package services

import (
	"context"
	"net/http"

	"github.com/stockai/stockai-go/models"
)

// CheckHealth reports whether the backend answers its health endpoint with a
// success status. It never returns an error: transport failures and
// unhealthy responses both map to false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	_, err := c.Health(ctx)
	return err == nil
}

// Health returns the backend's full health report.
func (c *Client) Health(ctx context.Context) (*models.HealthReport, error) {
	var report models.HealthReport
	if err := c.do(ctx, "health", http.MethodGet, "/health", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetDBInfo returns backend storage diagnostics.
func (c *Client) GetDBInfo(ctx context.Context) (*models.DBInfo, error) {
	var info models.DBInfo
	if err := c.do(ctx, "db_info", http.MethodGet, "/api/db-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
