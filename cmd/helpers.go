package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parselmouth/parselmouth/internal/config"
	"github.com/parselmouth/parselmouth/internal/extract"
	"github.com/parselmouth/parselmouth/internal/llm"
	"github.com/parselmouth/parselmouth/internal/progress"
	"github.com/parselmouth/parselmouth/internal/title"
)

// resolveConfig layers the persistent flags the user actually set on top of
// environment, config file and defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	var ov config.Overrides

	if f.Changed("provider") {
		v, _ := f.GetString("provider")
		ov.Provider = &v
	}
	if f.Changed("api-key") {
		v, _ := f.GetString("api-key")
		ov.APIKey = &v
	}
	if f.Changed("model") {
		v, _ := f.GetString("model")
		ov.Model = &v
	}
	if f.Changed("date-format") {
		v, _ := f.GetString("date-format")
		ov.DateFormat = &v
	}
	if f.Changed("separator") {
		v, _ := f.GetString("separator")
		ov.Separator = &v
	}
	if f.Changed("casing") {
		v, _ := f.GetString("casing")
		ov.Casing = &v
	}
	// --no-include-date wins over --include-date when both are given.
	if f.Changed("no-include-date") {
		v := false
		ov.IncludeDate = &v
	} else if f.Changed("include-date") {
		v, _ := f.GetBool("include-date")
		ov.IncludeDate = &v
	}

	return config.Resolve(cfgFile, ov)
}

// suggestStem runs the full pipeline for one document: resolve config,
// extract content, ask the provider for a title and format it into a
// filename stem.
func suggestStem(cmd *cobra.Command, path string) (string, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return "", err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return "", err
	}

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.APIKey)
	if err != nil {
		return "", err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing %s with %s model %s\n", path, provider.Name(), cfg.Model)
	}

	reporter := progress.NewReporter()
	reporter.Start(3)
	defer reporter.Finish()

	reporter.Step("extracting " + filepath.Base(path))
	content, err := extract.New().Extract(ctx, path)
	if err != nil {
		return "", err
	}

	reporter.Step("requesting title from " + provider.Name())
	sug, err := title.NewRequester(provider, cfg.Model).Suggest(ctx, content, cfg.IncludeDate, cfg.Separator)
	if err != nil {
		return "", err
	}

	reporter.Step("formatting title")
	date := sug.Date
	if date.IsZero() && cfg.IncludeDate {
		if d, ok := title.FindDate(content); ok {
			date = d
		}
	}

	return title.Format(sug.Title, date, title.Options{
		Separator:   cfg.Separator,
		IncludeDate: cfg.IncludeDate,
		DateFormat:  cfg.DateFormat,
		Casing:      cfg.Casing,
	})
}
