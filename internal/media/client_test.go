package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UploadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/image/upload", r.URL.Path)
		// Basic base64("key:secret")
		assert.Equal(t, "Basic a2V5OnNlY3JldA==", r.Header.Get("Authorization"))

		var req UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/source.jpg", req.File)
		assert.Equal(t, "business", req.Folder)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(UploadResult{
			PublicID:  "business/abc123",
			SecureURL: "https://cdn.example.com/business/abc123.jpg",
			Width:     800,
			Height:    600,
			Format:    "jpg",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "secret")

	result, err := client.UploadFromURL(context.Background(), "https://example.com/source.jpg", "business")
	require.NoError(t, err)
	assert.Equal(t, "business/abc123", result.PublicID)
	assert.Equal(t, "https://cdn.example.com/business/abc123.jpg", result.SecureURL)
	assert.Equal(t, 800, result.Width)
}

func TestClient_UploadFromURL_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "wrong")

	_, err := client.UploadFromURL(context.Background(), "https://example.com/source.jpg", "")
	assert.Error(t, err)
}

func TestClient_OptimizedURL(t *testing.T) {
	client := NewClient("https://cdn.example.com", "key", "secret")

	assert.Equal(t,
		"https://cdn.example.com/image/f_auto,q_auto,w_300,h_200/business%2Fabc123",
		client.OptimizedURL("business/abc123", 300, 200))
	assert.Equal(t,
		"https://cdn.example.com/image/f_auto,q_auto/abc123",
		client.OptimizedURL("abc123", 0, 0))
}
