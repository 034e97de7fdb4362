package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parselmouth/parselmouth/internal/rename"
)

var renameDryRun bool

var renameCmd = &cobra.Command{
	Use:   "rename <file>",
	Short: "Rename a document to its suggested title",
	Long: `Rename runs the same pipeline as suggest and then renames the file in
place: same directory, suggested stem, original extension. If the target
name is already taken a numeric suffix ("-1", "-2", …) is appended rather
than overwriting anything. With --dry-run the intended rename is printed
and nothing on disk changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stem, err := suggestStem(cmd, args[0])
		if err != nil {
			return err
		}

		plan, err := rename.NewPlan(args[0], stem)
		if err != nil {
			return err
		}
		if err := rename.Apply(plan, renameDryRun); err != nil {
			return err
		}

		if renameDryRun {
			fmt.Printf("Would rename: %s -> %s\n", plan.SourcePath, plan.TargetPath)
		} else {
			fmt.Printf("Renamed: %s -> %s\n", plan.SourcePath, plan.TargetPath)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "print the intended rename without touching the file")
	rootCmd.AddCommand(renameCmd)
}
