package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestQuery(t *testing.T) {
	payload := map[string]interface{}{
		"search_metadata": map[string]interface{}{"status": "Success"},
		"news_results": []map[string]interface{}{
			{
				"position":  1,
				"title":     "Acme Corp beats earnings",
				"source":    map[string]interface{}{"name": "Reuters", "icon": "https://example.com/r.png"},
				"link":      "https://example.com/acme",
				"date":      "01/02/2024, 08:00 AM, +0000 UTC",
				"thumbnail": "https://example.com/t.jpg",
			},
		},
	}

	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, 0)
	articles, err := c.Query(context.Background(), "ACME stock news")

	assert.Equal(t, nil, err)
	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "google_news", gotQuery["engine"][0])
	assert.Equal(t, "ACME stock news", gotQuery["q"][0])
	assert.Equal(t, "test-key", gotQuery["api_key"][0])

	assert.Equal(t, 1, len(articles))
	a := articles[0]
	assert.Equal(t, "Acme Corp beats earnings", a.Title)
	assert.Equal(t, "https://example.com/acme", a.Link)
	assert.Equal(t, "01/02/2024, 08:00 AM, +0000 UTC", a.Date)

	var source map[string]string
	json.Unmarshal(a.Source, &source)
	assert.Equal(t, "Reuters", source["name"])
}

func TestQuery_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Google hasn't returned any results for this query."}`))
	}))
	defer srv.Close()

	articles, err := NewClient("k", srv.URL, 0).Query(context.Background(), "ZZZZ stock news")

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, articles)
	assert.Equal(t, 0, len(articles))
}

func TestQuery_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key."}`))
	}))
	defer srv.Close()

	_, err := NewClient("bad", srv.URL, 0).Query(context.Background(), "AAPL stock news")

	assert.Equal(t, true, errors.Is(err, ErrUpstreamStatus))
}

func TestQuery_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := NewClient("k", srv.URL, 0).Query(context.Background(), "AAPL stock news")

	assert.NotEqual(t, nil, err)
}

func TestQuery_NetworkErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient("secret-key", srv.URL, 0).Query(context.Background(), "AAPL stock news")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, strings.Contains(err.Error(), "secret-key"))
}
