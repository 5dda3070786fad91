//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const testAPIKey = "e2e-key"

// fakeProvider answers current-weather requests from a fixed table
type fakeProvider struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFakeProvider() *fakeProvider {
	p := &fakeProvider{}
	p.srv = httptest.NewServer(http.HandlerFunc(p.serve))
	return p
}

func (p *fakeProvider) URL() string { return p.srv.URL }

func (p *fakeProvider) Close() { p.srv.Close() }

// Requests returns the cities asked for so far
func (p *fakeProvider) Requests() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.requests...)
}

func (p *fakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := q.Get("q")

	p.mu.Lock()
	p.requests = append(p.requests, city)
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if q.Get("appid") != testAPIKey {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"cod": 401, "message": "Invalid API key"})
		return
	}

	switch strings.ToLower(city) {
	case "atlantis":
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404"}`))
	case "nowhere":
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"cod": "404", "message": "city not found"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": city,
			"main": map[string]any{"temp": 18.6, "humidity": 64},
			"wind": map[string]any{"speed": 3.6},
			"weather": []map[string]any{
				{"id": 800, "description": "clear sky"},
			},
		})
	}
}
