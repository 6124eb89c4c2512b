package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("expected batch size %d, got %d", DefaultBatchSize, cfg.BatchSize)
	}
	if cfg.MainTaxonThreshold != DefaultMainTaxonThreshold {
		t.Errorf("expected threshold %v, got %v", DefaultMainTaxonThreshold, cfg.MainTaxonThreshold)
	}
	if cfg.SortBy != "id" {
		t.Errorf("expected default sort key id, got %q", cfg.SortBy)
	}
	if cfg.CacheDir == "" {
		t.Error("expected a default cache directory")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative batch size",
			mutate:  func(c *Config) { c.BatchSize = -1 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.MainTaxonThreshold = 1.1 },
			wantErr: ErrInvalidThreshold,
		},
		{
			name: "conflicting output formats",
			mutate: func(c *Config) {
				c.JSONOutput = true
				c.MarkdownOutput = true
			},
			wantErr: ErrConflictingFormats,
		},
		{
			name:   "single output format is fine",
			mutate: func(c *Config) { c.JSONOutput = true },
		},
		{
			name:    "non-positive data source ID",
			mutate:  func(c *Config) { c.DataSourceIDs = []int{1, 0} },
			wantErr: ErrInvalidDataSourceID,
		},
		{
			name:    "unknown sort key",
			mutate:  func(c *Config) { c.SortBy = "color" },
			wantErr: ErrInvalidSortKey,
		},
		{
			name:   "record-count sort key",
			mutate: func(c *Config) { c.SortBy = "record-count" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	t.Run("includes the contact email", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Email = "someone@example.org"
		got := cfg.UserAgent("1.2.3")
		if got != "gnvclient/1.2.3 (someone@example.org)" {
			t.Errorf("unexpected user agent %q", got)
		}
	})

	t.Run("falls back to the project URL", func(t *testing.T) {
		t.Parallel()

		got := NewConfig().UserAgent("1.2.3")
		if !strings.HasPrefix(got, "gnvclient/1.2.3 (") || strings.Contains(got, "@") {
			t.Errorf("unexpected user agent %q", got)
		}
	})
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if got := XDGCacheDir(); !strings.HasSuffix(got, AppName) {
		t.Errorf("cache dir should end with the app name: %q", got)
	}
	if got := XDGConfigDir(); !strings.HasSuffix(got, AppName) {
		t.Errorf("config dir should end with the app name: %q", got)
	}
}

func TestValidateTimeoutBoundary(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Timeout = time.Nanosecond
	if err := cfg.Validate(); err != nil {
		t.Errorf("any positive timeout is valid, got %v", err)
	}
}
