package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockai/stockai-go/internal/session"
)

// newTestClient wires a Client against an httptest backend with a fresh
// session store.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(t.TempDir(), "test-passphrase")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	return NewClient(server.URL, store), store
}

func TestNewClient(t *testing.T) {
	store, err := session.NewStore(t.TempDir(), "test-passphrase")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	client := NewClient("http://localhost:5000/", store)
	if client == nil {
		t.Fatal("NewClient should not return nil")
	}
	if client.baseURL != "http://localhost:5000" {
		t.Errorf("baseURL = %v, want trailing slash trimmed", client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("httpClient should not be nil")
	}
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
	}))

	_, err := client.Signup(context.Background(), "a@b.c", "secret1", "A B")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Email already registered" {
		t.Errorf("err.Error() = %q, want backend message verbatim", err.Error())
	}
}

func TestClient_ErrorWithoutMessageNamesStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("{}"))
	}))

	_, err := client.GetSectors(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "HTTP error, status 502" {
		t.Errorf("err.Error() = %q, want 'HTTP error, status 502'", err.Error())
	}
}

func TestClient_ErrorNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html>gateway timeout</html>"))
	}))

	_, err := client.GetSectors(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "HTTP error, status 503" {
		t.Errorf("err.Error() = %q, want 'HTTP error, status 503'", err.Error())
	}
}

func TestClient_AuthorizationHeaderWithToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))

	if err := store.SetToken("tok-abc"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}

	if _, err := client.GetWatchlist(context.Background()); err != nil {
		t.Fatalf("GetWatchlist() error = %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want 'Bearer tok-abc'", gotAuth)
	}
}

func TestClient_NoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	sawHeader := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte("[]"))
	}))

	// Authenticated endpoints are still called without a token; the backend
	// is the authority that rejects them.
	if _, err := client.GetWatchlist(context.Background()); err != nil {
		t.Fatalf("GetWatchlist() error = %v", err)
	}
	if sawHeader || gotAuth != "" {
		t.Errorf("Authorization = %q, want no header", gotAuth)
	}
}

func TestClient_ContentTypeOnlyWithBody(t *testing.T) {
	contentTypes := map[string]string{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentTypes[r.URL.Path] = r.Header.Get("Content-Type")
		switch r.URL.Path {
		case "/api/chat":
			json.NewEncoder(w).Encode(map[string]string{"response": "hi"})
		default:
			w.Write([]byte("[]"))
		}
	}))

	if _, err := client.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if _, err := client.GetChatHistory(context.Background()); err != nil {
		t.Fatalf("GetChatHistory() error = %v", err)
	}

	if contentTypes["/api/chat"] != "application/json" {
		t.Errorf("POST Content-Type = %q, want application/json", contentTypes["/api/chat"])
	}
	if contentTypes["/api/chat/history"] != "" {
		t.Errorf("GET Content-Type = %q, want empty", contentTypes["/api/chat/history"])
	}
}

func TestClient_RequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte("[]"))
	}))

	for i := 0; i < 3; i++ {
		if _, err := client.GetSectors(context.Background()); err != nil {
			t.Fatalf("GetSectors() error = %v", err)
		}
	}

	if len(seen) != 3 {
		t.Errorf("got %d distinct request ids, want 3", len(seen))
	}
	if seen[""] {
		t.Error("X-Request-ID header missing on some request")
	}
}

func TestClient_TransportErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	store, err := session.NewStore(t.TempDir(), "test-passphrase")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	client := NewClient(server.URL, store)
	server.Close()

	if _, err := client.GetSectors(context.Background()); err == nil {
		t.Error("expected transport error against closed server")
	}
}
