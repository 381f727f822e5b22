package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot builds the full command tree pointed at an httptest backend,
// with session state isolated in a temp dir.
func newTestRoot(t *testing.T, handler http.Handler) *cobra.Command {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("STOCKAI_API_URL", server.URL)
	t.Setenv("STOCKAI_DATA_DIR", t.TempDir())

	return NewRootCmd()
}

func stockBackend(gotPeriod *string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/get_stock_data/{symbol}", func(w http.ResponseWriter, r *http.Request) {
		*gotPeriod = r.URL.Query().Get("period")
		w.Write([]byte(`{"symbol": "AAPL", "current_price": 187.5, "data": []}`))
	})
	return mux
}

func TestQuote_PeriodDefaultsFromConfig(t *testing.T) {
	var gotPeriod string
	t.Setenv("STOCKAI_DEFAULT_PERIOD", "5d")

	root := newTestRoot(t, stockBackend(&gotPeriod))
	root.SetArgs([]string{"quote", "AAPL"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotPeriod != "5d" {
		t.Errorf("period sent = %q, want the configured default '5d'", gotPeriod)
	}
}

func TestQuote_PeriodFlagOverridesConfig(t *testing.T) {
	var gotPeriod string
	t.Setenv("STOCKAI_DEFAULT_PERIOD", "5d")

	root := newTestRoot(t, stockBackend(&gotPeriod))
	root.SetArgs([]string{"quote", "AAPL", "--period", "3mo"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotPeriod != "3mo" {
		t.Errorf("period sent = %q, want the explicit flag '3mo'", gotPeriod)
	}
}

func predictBackend(gotModel *string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/predict", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		*gotModel = body["model_type"]
		json.NewEncoder(w).Encode(map[string]any{
			"symbol":               "AAPL",
			"predicted_price":      190.25,
			"current_price":        187.50,
			"price_change_percent": 1.47,
			"confidence":           82.5,
			"model_type":           body["model_type"],
			"recommendation":       "BUY",
			"prediction_date":      "2024-01-15",
		})
	})
	return mux
}

func TestPredict_ModelDefaultsFromConfig(t *testing.T) {
	var gotModel string
	t.Setenv("STOCKAI_DEFAULT_MODEL", "LSTM")

	root := newTestRoot(t, predictBackend(&gotModel))
	root.SetArgs([]string{"predict", "AAPL"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotModel != "LSTM" {
		t.Errorf("model_type sent = %q, want the configured default 'LSTM'", gotModel)
	}
}

func TestPredict_ModelFlagOverridesConfig(t *testing.T) {
	var gotModel string
	t.Setenv("STOCKAI_DEFAULT_MODEL", "LSTM")

	root := newTestRoot(t, predictBackend(&gotModel))
	root.SetArgs([]string{"predict", "AAPL", "--model", "SVM"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotModel != "SVM" {
		t.Errorf("model_type sent = %q, want the explicit flag 'SVM'", gotModel)
	}
}

func TestChat_JoinsMessageWords(t *testing.T) {
	var gotMessage string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotMessage = body["message"]
		json.NewEncoder(w).Encode(map[string]string{"response": "fine"})
	})

	root := newTestRoot(t, mux)
	root.SetArgs([]string{"chat", "how", "did", "AAPL", "do"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotMessage != "how did AAPL do" {
		t.Errorf("message sent = %q, want the words joined by spaces", gotMessage)
	}
}
