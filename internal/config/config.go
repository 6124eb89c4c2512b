package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. The network defaults mirror what the
// GNverifier service operators ask of API clients.
const (
	// DefaultTimeout is the per-request timeout. The verification endpoint
	// can take tens of seconds for large batches with statistics enabled.
	DefaultTimeout = 30 * time.Second

	// DefaultBatchSize is the maximum number of names sent in one API call.
	// Longer name lists are split and reassembled client-side.
	DefaultBatchSize = 500

	// DefaultMainTaxonThreshold mirrors the engine default for main taxon
	// detection in statistics.
	DefaultMainTaxonThreshold = 0.6

	// AppName is the application name used for XDG directory paths.
	AppName = "gnvclient"
)

// Config holds all configuration options for gnvclient.
//
// A single flat struct keeps flag wiring simple; the option count is
// manageable and nesting would add complexity without benefit.
type Config struct {
	// Email is the contact address included in the User-Agent header.
	// The API operators ask for one so they can reach heavy users; it is
	// optional but recommended.
	Email string

	// BaseURL overrides the engine endpoint. Empty means the public
	// GNverifier API. Used mainly by tests.
	BaseURL string

	// Timeout is the per-request timeout for engine calls.
	Timeout time.Duration

	// BatchSize is the maximum number of names per engine call.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .gnvclient in the current directory and then in the
	// user's home directory.
	ConfigFilePath string

	// NoCache disables the on-disk data source catalog cache.
	NoCache bool

	// CacheDir is the directory for the catalog cache database.
	// Defaults to the XDG cache directory.
	CacheDir string

	// Names is the list of scientific names to verify.
	Names []string

	// DataSourceIDs restricts verification to these data source IDs.
	DataSourceIDs []int

	// SourceTitles restricts verification to data sources named by title.
	// Titles are resolved against the catalog before the engine call.
	SourceTitles []string

	// AllMatches returns every candidate per name instead of the best one.
	AllMatches bool

	// Stats includes aggregate statistics in the result.
	Stats bool

	// Capitalization asks the engine to fix case errors before matching.
	Capitalization bool

	// SpeciesGroup expands binomials to their species group while matching.
	SpeciesGroup bool

	// UninomialFuzzyMatch enables fuzzy matching for uninomial names.
	UninomialFuzzyMatch bool

	// MainTaxonThreshold is the main-taxon detection threshold, in [0, 1].
	MainTaxonThreshold float64

	// JSONOutput renders results as JSON instead of the human-readable
	// format. Mutually exclusive with MarkdownOutput and CSV/TSV.
	JSONOutput bool

	// MarkdownOutput renders results as GitHub Flavored Markdown.
	MarkdownOutput bool

	// CSVOutput renders the data source listing as CSV (data-sources only).
	CSVOutput bool

	// TSVOutput renders the data source listing as TSV (data-sources only).
	TSVOutput bool

	// OutputFile writes the report to this path instead of stdout.
	// Directories are created automatically if they don't exist.
	OutputFile string

	// SortBy orders the data source listing: id, title, record-count, or
	// updated-at.
	SortBy string

	// Descending reverses the data source sort order.
	Descending bool
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so relying on zero values would be error-prone; the constructor
// also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:            DefaultTimeout,
		BatchSize:          DefaultBatchSize,
		MainTaxonThreshold: DefaultMainTaxonThreshold,
		CacheDir:           XDGCacheDir(),
		SortBy:             "id",
	}
}

// XDGCacheDir returns the XDG cache directory for gnvclient.
// On Linux: ~/.cache/gnvclient
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// XDGConfigDir returns the XDG config directory for gnvclient.
// On Linux: ~/.config/gnvclient
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// UserAgent builds the User-Agent header for engine calls, including the
// contact email when one is configured.
func (c *Config) UserAgent(version string) string {
	if c.Email != "" {
		return fmt.Sprintf("gnvclient/%s (%s)", version, c.Email)
	}
	return fmt.Sprintf("gnvclient/%s (+https://github.com/gnvclient/gnvclient)", version)
}

// Validate checks the configuration and returns the first problem found.
// Validation happens at this level rather than at each point of use so the
// tool fails fast with a clear message before any network call.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.MainTaxonThreshold < 0 || c.MainTaxonThreshold > 1 {
		return ErrInvalidThreshold
	}

	// Exactly one output format may be chosen.
	formats := 0
	for _, enabled := range []bool{c.JSONOutput, c.MarkdownOutput, c.CSVOutput, c.TSVOutput} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingFormats
	}

	for _, id := range c.DataSourceIDs {
		if id <= 0 {
			return ErrInvalidDataSourceID
		}
	}

	switch c.SortBy {
	case "", "id", "title", "record-count", "updated-at":
	default:
		return ErrInvalidSortKey
	}

	return nil
}
