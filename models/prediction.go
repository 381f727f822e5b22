package models

import (
	"github.com/shopspring/decimal"
)

// ModelType identifies which ML model the backend trains for a prediction.
type ModelType string

const (
	ModelSVM          ModelType = "SVM"
	ModelDecisionTree ModelType = "DecisionTree"
	ModelRandomForest ModelType = "RandomForest"
	ModelLSTM         ModelType = "LSTM"

	// DefaultModelType is substituted when a caller does not pick a model.
	DefaultModelType = ModelRandomForest
)

// Valid reports whether the model type is one the backend supports.
func (m ModelType) Valid() bool {
	switch m {
	case ModelSVM, ModelDecisionTree, ModelRandomForest, ModelLSTM:
		return true
	}
	return false
}

// Prediction is the result of a single prediction request.
type Prediction struct {
	Symbol             string          `json:"symbol"`
	PredictedPrice     decimal.Decimal `json:"predicted_price"`
	CurrentPrice       decimal.Decimal `json:"current_price"`
	PriceChangePercent float64         `json:"price_change_percent"`
	Confidence         float64         `json:"confidence"`
	ModelType          ModelType       `json:"model_type"`
	Recommendation     string          `json:"recommendation"`
	PredictionDate     string          `json:"prediction_date"`
}

// PredictionRecord is one entry of a user's stored prediction history.
type PredictionRecord struct {
	ID             string          `json:"_id"`
	UserID         string          `json:"user_id"`
	Symbol         string          `json:"symbol"`
	PredictedPrice decimal.Decimal `json:"predicted_price"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	Confidence     float64         `json:"confidence"`
	ModelType      ModelType       `json:"model_type"`
	Recommendation string          `json:"recommendation"`
	CreatedAt      string          `json:"created_at"`
}
