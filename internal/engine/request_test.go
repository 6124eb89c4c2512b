package engine

import (
	"errors"
	"testing"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	t.Run("zero threshold takes the engine default", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}
		if req.MainTaxonThreshold != DefaultMainTaxonThreshold {
			t.Errorf("expected threshold %v, got %v", DefaultMainTaxonThreshold, req.MainTaxonThreshold)
		}
	})

	t.Run("explicit threshold is kept", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{MainTaxonThreshold: 0.9})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}
		if req.MainTaxonThreshold != 0.9 {
			t.Errorf("expected threshold 0.9, got %v", req.MainTaxonThreshold)
		}
	})

	t.Run("threshold above 1 is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{MainTaxonThreshold: 1.5})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("negative threshold is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewRequest([]string{"Bubo bubo"}, RequestOptions{MainTaxonThreshold: -0.1})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("expected ErrInvalidThreshold, got %v", err)
		}
	})
}

func TestRequestPayload(t *testing.T) {
	t.Parallel()

	t.Run("nil source filter encodes as empty list", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest([]string{"a"}, RequestOptions{})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}

		p := req.payload(req.Names)
		if p.DataSources == nil {
			t.Error("expected empty data source list, got nil")
		}
		if len(p.DataSources) != 0 {
			t.Errorf("expected no data sources, got %v", p.DataSources)
		}
	})

	t.Run("options are repeated on every batch", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest([]string{"a", "b"}, RequestOptions{
			DataSourceIDs:  []int{1, 12},
			WithAllMatches: true,
			WithStats:      true,
		})
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}

		p := req.payload(req.Names[1:])
		if len(p.NameStrings) != 1 || p.NameStrings[0] != "b" {
			t.Errorf("unexpected batch names %v", p.NameStrings)
		}
		if len(p.DataSources) != 2 {
			t.Errorf("expected source filter on batch, got %v", p.DataSources)
		}
		if !p.WithAllMatches || !p.WithStats {
			t.Error("expected flags to be carried onto the batch")
		}
	})
}

func TestRawNameMatches(t *testing.T) {
	t.Parallel()

	t.Run("prefers results over bestResult", func(t *testing.T) {
		t.Parallel()

		n := RawName{
			Results:    []RawResult{{MatchedName: "a"}, {MatchedName: "b"}},
			BestResult: &RawResult{MatchedName: "c"},
		}
		if got := n.Matches(); len(got) != 2 || got[0].MatchedName != "a" {
			t.Errorf("unexpected matches %+v", got)
		}
	})

	t.Run("falls back to bestResult", func(t *testing.T) {
		t.Parallel()

		n := RawName{BestResult: &RawResult{MatchedName: "c"}}
		if got := n.Matches(); len(got) != 1 || got[0].MatchedName != "c" {
			t.Errorf("unexpected matches %+v", got)
		}
	})

	t.Run("no results yields nil", func(t *testing.T) {
		t.Parallel()

		if got := (RawName{}).Matches(); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}
