package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Suggest a title for a document without renaming it",
	Long: `Suggest extracts the document's content, asks the configured LLM
provider for a descriptive title and prints the sanitized filename stem.
The file on disk is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stem, err := suggestStem(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Suggested Title: %s\n", stem)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
