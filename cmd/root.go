package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parselmouth",
	Short: "AI-assisted document titling and renaming",
	Long: `Parselmouth sends a document's content to an LLM, receives a suggested
title (including a relevant date where one exists), and can rename the
file on disk to match. Configuration layers, highest precedence first:
CLI flags, PARSELMOUTH_* environment variables, the YAML config file,
built-in defaults.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file path (default parselmouth.yaml, then ~/.config/parselmouth/config.yaml)")
	pf.String("api-key", "", "API key for the LLM provider")
	pf.String("provider", "", "LLM provider: google, openai or ollama")
	pf.String("model", "", "model to use (default gemini-2.5-flash)")
	pf.Bool("include-date", true, "prefix the title with an extracted date")
	pf.Bool("no-include-date", false, "do not prefix the title with a date")
	pf.String("date-format", "", "date format for the title prefix (default YYYY-MM-DD)")
	pf.String("separator", "", "separator between title words (default _)")
	pf.String("casing", "", "title casing: lower or preserve")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
