package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnvclient/gnvclient/internal/catalog"
	"github.com/gnvclient/gnvclient/internal/config"
	"github.com/gnvclient/gnvclient/internal/model"
	"github.com/gnvclient/gnvclient/internal/report"
	"github.com/gnvclient/gnvclient/internal/verifier"
)

// NewDataSourcesCmd creates the data-sources command.
func NewDataSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data-sources",
		Short: "List the data sources available to the verifier",
		Long: `List the nomenclatural databases the GNverifier service can match
against, with their engine-assigned IDs.

The listing is cached on disk for a week; use --refresh to force a
re-fetch.

Examples:
  # Table on the terminal
  gnvclient data-sources

  # Largest sources first
  gnvclient data-sources --sort-by record-count --desc

  # Export for spreadsheets
  gnvclient data-sources --csv -o sources.csv`,
		Args: cobra.NoArgs,
		RunE: runDataSourcesCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output JSON")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown")
	cmd.Flags().Bool("csv", false, "Output comma-separated values")
	cmd.Flags().Bool("tsv", false, "Output tab-separated values")
	cmd.Flags().StringP("output", "o", "",
		"Write the listing to the specified file path")
	cmd.Flags().String("sort-by", report.SortByID,
		"Sort key: id, title, record-count, or updated-at")
	cmd.Flags().Bool("desc", false, "Sort in descending order")
	cmd.Flags().Bool("refresh", false, "Re-fetch the listing instead of using the cache")
	cmd.Flags().Bool("no-cache", false, "Disable the on-disk catalog cache")

	return cmd
}

// runDataSourcesCmd executes the data-sources command.
func runDataSourcesCmd(cmd *cobra.Command, _ []string) error {
	cfg, refresh, err := buildDataSourcesConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	client := newEngineClient(cfg)

	catalogOpts := []catalog.CatalogOption{catalog.WithLogger(logger)}
	if !cfg.NoCache {
		store, err := catalog.OpenStore(cfg.CacheDir, catalog.DefaultStoreOptions())
		if err != nil {
			logger.Warn("catalog cache unavailable", "dir", cfg.CacheDir, "error", err)
		} else {
			defer store.Close() //nolint:errcheck // Read-mostly cache
			catalogOpts = append(catalogOpts, catalog.WithStore(store))
		}
	}

	v := verifier.New(client, catalog.New(client, catalogOpts...))

	var sources []model.DataSource
	if refresh {
		sources, err = v.RefreshDataSources(ctx)
	} else {
		sources, err = v.DataSources(ctx)
	}
	if err != nil {
		return err
	}

	sources = report.SortDataSources(sources, cfg.SortBy, cfg.Descending)

	return outputDataSources(cfg, sources)
}

// buildDataSourcesConfig creates a Config from cobra command flags.
// The second return value is the --refresh flag.
func buildDataSourcesConfig(cmd *cobra.Command) (*config.Config, bool, error) {
	cfg, err := baseConfig(cmd)
	if err != nil {
		return nil, false, err
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, false, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, false, err
	}

	cfg.CSVOutput, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, false, err
	}

	cfg.TSVOutput, err = cmd.Flags().GetBool("tsv")
	if err != nil {
		return nil, false, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, false, err
	}

	cfg.SortBy, err = cmd.Flags().GetString("sort-by")
	if err != nil {
		return nil, false, err
	}

	cfg.Descending, err = cmd.Flags().GetBool("desc")
	if err != nil {
		return nil, false, err
	}

	if noCache, err := cmd.Flags().GetBool("no-cache"); err == nil && noCache {
		cfg.NoCache = true
	}

	refresh, err := cmd.Flags().GetBool("refresh")
	if err != nil {
		return nil, false, err
	}

	return cfg, refresh, nil
}

// outputDataSources renders the listing in the requested format.
func outputDataSources(cfg *config.Config, sources []model.DataSource) error {
	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Flushed on write

	var writer report.DataSourceWriter
	switch {
	case cfg.JSONOutput:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		writer = report.NewMarkdownWriter(output)
	case cfg.CSVOutput:
		writer = report.NewCSVWriter(output)
	case cfg.TSVOutput:
		writer = report.NewTSVWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err = writer.WriteDataSources(sources)
	return err
}
