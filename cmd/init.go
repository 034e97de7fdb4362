package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parselmouth/parselmouth/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file through an interactive wizard",
	Long: `Init walks through provider, model and title formatting choices and
writes the result to parselmouth.yaml in the current directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
