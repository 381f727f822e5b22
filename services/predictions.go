package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockai/stockai-go/models"
)

// Predict requests an ML price prediction for a symbol. An empty model type
// defaults to RandomForest. Requires a valid session; the backend stores the
// prediction in the caller's history.
func (c *Client) Predict(ctx context.Context, symbol string, modelType models.ModelType) (*models.Prediction, error) {
	if modelType == "" {
		modelType = models.DefaultModelType
	}
	if !modelType.Valid() {
		return nil, fmt.Errorf("unsupported model type %q", modelType)
	}

	payload := map[string]string{
		"symbol":     symbol,
		"model_type": string(modelType),
	}

	var pred models.Prediction
	if err := c.do(ctx, "predict", http.MethodPost, "/api/predict", payload, &pred); err != nil {
		return nil, err
	}

	c.metrics.RecordPrediction(string(pred.ModelType), pred.Confidence)
	return &pred, nil
}

// GetPredictionHistory returns the caller's stored predictions, most recent
// first. Requires a valid session.
func (c *Client) GetPredictionHistory(ctx context.Context) ([]models.PredictionRecord, error) {
	var records []models.PredictionRecord
	if err := c.do(ctx, "predictions", http.MethodGet, "/api/predictions", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
