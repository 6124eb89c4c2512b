package engine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient creates a client pointed at the given test server with
// request pacing disabled.
func newTestClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithBaseURL(url),
		WithMinRequestInterval(0),
	}
	return NewClient(append(base, opts...)...)
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	c := NewClient()

	t.Run("default base URL is the public API", func(t *testing.T) {
		t.Parallel()
		if c.BaseURL() != DefaultBaseURL {
			t.Errorf("expected base URL %q, got %q", DefaultBaseURL, c.BaseURL())
		}
	})

	t.Run("default batch limit is 500", func(t *testing.T) {
		t.Parallel()
		if c.batchLimit != DefaultBatchLimit {
			t.Errorf("expected batch limit %d, got %d", DefaultBatchLimit, c.batchLimit)
		}
	})

	t.Run("default pacing interval is 500ms", func(t *testing.T) {
		t.Parallel()
		if c.minInterval != DefaultMinRequestInterval {
			t.Errorf("expected interval %v, got %v", DefaultMinRequestInterval, c.minInterval)
		}
	})
}

// TestSubmitEncodesRequest verifies that request options reach the engine
// exactly as configured.
func TestSubmitEncodesRequest(t *testing.T) {
	t.Parallel()

	var received verificationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verifications" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "gnvclient-test/1.0 (test@example.org)" {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(RawOutput{ //nolint:errcheck // Test server
			Names: []RawName{{Name: "Pomatomus saltatrix", MatchType: "Exact"}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithUserAgent("gnvclient-test/1.0 (test@example.org)"))

	req, err := NewRequest([]string{"Pomatomus saltatrix"}, RequestOptions{
		DataSourceIDs:  []int{1, 12},
		WithAllMatches: true,
		WithStats:      true,
	})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if _, err := c.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(received.NameStrings) != 1 || received.NameStrings[0] != "Pomatomus saltatrix" {
		t.Errorf("unexpected names %v", received.NameStrings)
	}
	if len(received.DataSources) != 2 || received.DataSources[0] != 1 || received.DataSources[1] != 12 {
		t.Errorf("expected data sources [1 12], got %v", received.DataSources)
	}
	if !received.WithAllMatches {
		t.Error("expected withAllMatches to be true")
	}
	if !received.WithStats {
		t.Error("expected withStats to be true")
	}
	if received.MainTaxonThreshold != DefaultMainTaxonThreshold {
		t.Errorf("expected default threshold %v, got %v", DefaultMainTaxonThreshold, received.MainTaxonThreshold)
	}
}

func TestSubmitErrorMapping(t *testing.T) {
	t.Parallel()

	submit := func(t *testing.T, handler http.HandlerFunc) error {
		t.Helper()
		srv := httptest.NewServer(handler)
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		req, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}
		_, err = c.Submit(context.Background(), req)
		return err
	}

	t.Run("server error maps to ErrEngineUnavailable", func(t *testing.T) {
		t.Parallel()
		err := submit(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if !errors.Is(err, ErrEngineUnavailable) {
			t.Errorf("expected ErrEngineUnavailable, got %v", err)
		}
	})

	t.Run("client error maps to ErrEngineProtocol", func(t *testing.T) {
		t.Parallel()
		err := submit(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})
		if !errors.Is(err, ErrEngineProtocol) {
			t.Errorf("expected ErrEngineProtocol, got %v", err)
		}
	})

	t.Run("undecodable body maps to ErrEngineProtocol", func(t *testing.T) {
		t.Parallel()
		err := submit(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json")) //nolint:errcheck // Test server
		})
		if !errors.Is(err, ErrEngineProtocol) {
			t.Errorf("expected ErrEngineProtocol, got %v", err)
		}
	})

	t.Run("missing name echo maps to ErrEngineProtocol", func(t *testing.T) {
		t.Parallel()
		err := submit(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"names":[{"matchType":"Exact"}]}`)) //nolint:errcheck // Test server
		})
		if !errors.Is(err, ErrEngineProtocol) {
			t.Errorf("expected ErrEngineProtocol, got %v", err)
		}
	})

	t.Run("unreachable engine maps to ErrEngineUnavailable", func(t *testing.T) {
		t.Parallel()
		// Port 1 on localhost is essentially never listening.
		c := NewClient(WithBaseURL("http://127.0.0.1:1"), WithMinRequestInterval(0))
		req, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}
		_, err = c.Submit(context.Background(), req)
		if !errors.Is(err, ErrEngineUnavailable) {
			t.Errorf("expected ErrEngineUnavailable, got %v", err)
		}
	})
}

// TestPacing verifies that consecutive calls are spaced by the configured
// interval, using clock hooks instead of wall-clock sleeps.
func TestPacing(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	var slept time.Duration

	c := NewClient(
		WithMinRequestInterval(500*time.Millisecond),
		withClock(
			func() time.Time { return now },
			func(d time.Duration) { slept += d; now = now.Add(d) },
		),
	)

	// First call never sleeps.
	c.pace()
	if slept != 0 {
		t.Fatalf("first call slept %v, expected none", slept)
	}

	// Second call 100ms later must wait out the remaining 400ms.
	now = now.Add(100 * time.Millisecond)
	c.pace()
	if slept != 400*time.Millisecond {
		t.Errorf("expected 400ms of sleep, got %v", slept)
	}

	// A call after the interval has passed does not sleep.
	slept = 0
	now = now.Add(time.Second)
	c.pace()
	if slept != 0 {
		t.Errorf("expected no sleep after interval elapsed, got %v", slept)
	}
}

func TestListSources(t *testing.T) {
	t.Parallel()

	t.Run("decodes listing", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/data_sources" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			//nolint:errcheck // Test server
			_, _ = w.Write([]byte(`[
				{"id":1,"title":"Catalogue of Life","titleShort":"CoL","curation":"Curated","recordCount":4000000},
				{"id":12,"title":"Encyclopedia of Life","titleShort":"EOL"}
			]`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		sources, err := c.ListSources(context.Background())
		if err != nil {
			t.Fatalf("ListSources failed: %v", err)
		}

		if len(sources) != 2 {
			t.Fatalf("expected 2 sources, got %d", len(sources))
		}
		if sources[0].ID != 1 || sources[0].TitleShort != "CoL" {
			t.Errorf("unexpected first source %+v", sources[0])
		}
	})

	t.Run("entry without id maps to ErrEngineProtocol", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"title":"No ID"}]`)) //nolint:errcheck // Test server
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		if _, err := c.ListSources(context.Background()); !errors.Is(err, ErrEngineProtocol) {
			t.Errorf("expected ErrEngineProtocol, got %v", err)
		}
	})
}
