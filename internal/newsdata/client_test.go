package newsdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestMapsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "football", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":       "success",
			"totalResults": 1,
			"results": []map[string]any{{
				"title":     "A",
				"link":      "https://example.com/a",
				"source_id": "espn",
				"category":  []string{"sports"},
				"pubDate":   "2024-01-01 10:00:00",
				"creator":   []string{"Al"},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	articles, err := c.Latest(context.Background(), Query{Q: "football", Language: "en"}, 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "A", articles[0].Title)
	assert.Equal(t, "espn", articles[0].SourceID)
	assert.Equal(t, []string{"Al"}, articles[0].Creators)
}

func TestLatestFollowsNextPage(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := map[string]any{
			"status":  "success",
			"results": []map[string]any{{"title": "page", "link": "l", "source_id": "s"}},
		}
		if r.URL.Query().Get("page") == "" {
			resp["nextPage"] = "cursor-1"
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	articles, err := c.Latest(context.Background(), Query{}, 3)
	require.NoError(t, err)
	// Second page has no cursor, so pagination stops after two calls.
	assert.Equal(t, 2, calls)
	assert.Len(t, articles, 2)
}

func TestLatestStopsAtMaxPages(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "success",
			"results":  []map[string]any{{"title": "x", "link": "l", "source_id": "s"}},
			"nextPage": "more",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	articles, err := c.Latest(context.Background(), Query{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, articles, 2)
}

func TestLatestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key")
	_, err := c.Latest(context.Background(), Query{}, 1)
	assert.Error(t, err)
}

func TestLatestUpstreamErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	_, err := c.Latest(context.Background(), Query{}, 1)
	assert.Error(t, err)
}
