package card

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	snap, err := NewFetcher(server.URL).Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotUA != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, gotUA)
	}
	if len(snap.Cards) != 2 {
		t.Errorf("expected 2 cards, got %d", len(snap.Cards))
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	snap, err := NewFetcher(server.URL).Fetch()
	if err != nil {
		t.Fatalf("Fetch after retry: %v", err)
	}

	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
	if len(snap.Cards) != 2 {
		t.Errorf("expected 2 cards, got %d", len(snap.Cards))
	}
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewFetcher(server.URL).Fetch(); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if attempts != 1 {
		t.Errorf("expected a single attempt for a permanent failure, got %d", attempts)
	}
}
