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

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [name]...",
		Short: "Verify scientific names against nomenclatural databases",
		Long: `Verify sends scientific names to the GNverifier service and reports the
matching records found in its data sources.

By default each name gets the engine's single best match; --with-all-matches
returns every candidate. Data sources can be restricted by ID or by title.

Examples:
  # Verify a single name
  gnvclient verify -n "Pomatomus saltatrix"

  # Names as positional arguments, all matches, with statistics
  gnvclient verify --with-all-matches --with-stats "Bubo bubo" "Monodon monoceros"

  # Restrict to Catalogue of Life (id 1) and Encyclopedia of Life (id 12)
  gnvclient verify -d 1 -d 12 -n "Pomatomus saltatrix"

  # Restrict by title instead of ID
  gnvclient verify --source "Catalogue of Life" -n "Bubo bubo"

  # JSON output to a file
  gnvclient verify -j -o result.json -n "Pomatomus saltatrix"`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerifyCmd,
	}

	cmd.Flags().StringArrayP("name", "n", nil,
		"Scientific name to verify (repeatable)")
	cmd.Flags().IntSliceP("data-source", "d", nil,
		"Restrict matching to this data source ID (repeatable)")
	cmd.Flags().StringArray("source", nil,
		"Restrict matching to this data source title (repeatable)")
	cmd.Flags().Bool("with-all-matches", false,
		"Return all candidate matches per name instead of the best one")
	cmd.Flags().Bool("with-stats", false,
		"Include aggregate statistics in the result")
	cmd.Flags().Bool("with-capitalization", false,
		"Let the engine fix case errors in input names")
	cmd.Flags().Bool("with-species-group", false,
		"Expand binomials to their species group while matching")
	cmd.Flags().Bool("with-uninomial-fuzzy-match", false,
		"Enable fuzzy matching for uninomial names")
	cmd.Flags().Float64("main-taxon-threshold", config.DefaultMainTaxonThreshold,
		"Fraction of matched names a clade needs to be reported as main taxon")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each API request")
	cmd.Flags().Int("batch-size", config.DefaultBatchSize,
		"Maximum number of names per API request")
	cmd.Flags().Bool("no-cache", false,
		"Disable the on-disk data source catalog cache")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")

	return cmd
}

// runVerifyCmd executes the verify command.
func runVerifyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildVerifyConfig(cmd, args)
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
			// A broken cache never blocks verification.
			logger.Warn("catalog cache unavailable", "dir", cfg.CacheDir, "error", err)
		} else {
			defer store.Close() //nolint:errcheck // Read-mostly cache
			catalogOpts = append(catalogOpts, catalog.WithStore(store))
		}
	}

	v := verifier.New(client, catalog.New(client, catalogOpts...))

	logger.Info("verifying names",
		"count", len(cfg.Names),
		"dataSources", cfg.DataSourceIDs,
		"allMatches", cfg.AllMatches,
		"stats", cfg.Stats,
	)

	result, err := v.Verify(ctx, cfg.Names, verifier.Options{
		DataSourceIDs:       cfg.DataSourceIDs,
		SourceTitles:        cfg.SourceTitles,
		AllMatches:          cfg.AllMatches,
		Stats:               cfg.Stats,
		Capitalization:      cfg.Capitalization,
		SpeciesGroup:        cfg.SpeciesGroup,
		UninomialFuzzyMatch: cfg.UninomialFuzzyMatch,
		MainTaxonThreshold:  cfg.MainTaxonThreshold,
	})
	if err != nil {
		return err
	}

	return outputResult(cfg, result)
}

// buildVerifyConfig creates a Config from cobra command flags.
func buildVerifyConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := baseConfig(cmd)
	if err != nil {
		return nil, err
	}

	names, err := cmd.Flags().GetStringArray("name")
	if err != nil {
		return nil, err
	}
	cfg.Names = append(names, args...)

	cfg.DataSourceIDs, err = cmd.Flags().GetIntSlice("data-source")
	if err != nil {
		return nil, err
	}

	sources, err := cmd.Flags().GetStringArray("source")
	if err != nil {
		return nil, err
	}
	if len(sources) > 0 {
		cfg.SourceTitles = sources
	}

	cfg.AllMatches, err = cmd.Flags().GetBool("with-all-matches")
	if err != nil {
		return nil, err
	}

	cfg.Stats, err = cmd.Flags().GetBool("with-stats")
	if err != nil {
		return nil, err
	}

	cfg.Capitalization, err = cmd.Flags().GetBool("with-capitalization")
	if err != nil {
		return nil, err
	}

	cfg.SpeciesGroup, err = cmd.Flags().GetBool("with-species-group")
	if err != nil {
		return nil, err
	}

	cfg.UninomialFuzzyMatch, err = cmd.Flags().GetBool("with-uninomial-fuzzy-match")
	if err != nil {
		return nil, err
	}

	cfg.MainTaxonThreshold, err = cmd.Flags().GetFloat64("main-taxon-threshold")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize, err = cmd.Flags().GetInt("batch-size")
		if err != nil {
			return nil, err
		}
	}

	if noCache, err := cmd.Flags().GetBool("no-cache"); err == nil && noCache {
		cfg.NoCache = true
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// outputResult renders the verification result in the requested format.
func outputResult(cfg *config.Config, result *model.VerificationResult) error {
	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Flushed on write

	var writer report.VerificationWriter
	switch {
	case cfg.JSONOutput:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err = writer.Write(result)
	return err
}
