package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var setupCompletionCmd = &cobra.Command{
	Use:   "setup-completion",
	Short: "Install shell completion for your current shell",
	Long: `Setup-completion detects your shell from $SHELL, writes the completion
script to your home directory and wires it into your shell's startup file.
Bash and zsh scripts land in ~/.parselmouth-complete.<shell> with a source
line appended to the rc file; fish completions go straight into
~/.config/fish/completions/.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell()
		if shell == "" {
			fmt.Fprintln(os.Stderr, "Could not detect a supported shell from $SHELL (bash, zsh and fish are supported).")
			fmt.Fprintln(os.Stderr, "Generate a script manually with: parselmouth completion <shell>")
			return nil
		}
		fmt.Printf("Detected shell: %s\n", shell)
		return installCompletion(shell)
	},
}

func init() {
	rootCmd.AddCommand(setupCompletionCmd)
}

func detectShell() string {
	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "bash", "zsh", "fish":
		return shell
	}
	return ""
}

// completionTarget describes where a shell's completion script lives and,
// for shells that need it, the rc file line that loads it.
type completionTarget struct {
	scriptPath string
	rcFile     string
	sourceLine string
}

func completionTargetFor(shell, home string) completionTarget {
	switch shell {
	case "bash":
		return completionTarget{
			scriptPath: filepath.Join(home, ".parselmouth-complete.bash"),
			rcFile:     filepath.Join(home, ".bashrc"),
			sourceLine: "source ~/.parselmouth-complete.bash",
		}
	case "zsh":
		return completionTarget{
			scriptPath: filepath.Join(home, ".parselmouth-complete.zsh"),
			rcFile:     filepath.Join(home, ".zshrc"),
			sourceLine: "source ~/.parselmouth-complete.zsh",
		}
	default: // fish loads everything in its completions directory.
		return completionTarget{
			scriptPath: filepath.Join(home, ".config", "fish", "completions", "parselmouth.fish"),
		}
	}
}

func installCompletion(shell string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	tgt := completionTargetFor(shell, home)

	if err := os.MkdirAll(filepath.Dir(tgt.scriptPath), 0o755); err != nil {
		return fmt.Errorf("creating completion directory: %w", err)
	}
	f, err := os.Create(tgt.scriptPath)
	if err != nil {
		return fmt.Errorf("writing completion script: %w", err)
	}
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(f, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(f)
	case "fish":
		err = rootCmd.GenFishCompletion(f, true)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing completion script: %w", err)
	}
	fmt.Printf("Wrote completion script: %s\n", tgt.scriptPath)

	if tgt.rcFile != "" {
		added, err := ensureSourceLine(tgt.rcFile, tgt.sourceLine)
		if err != nil {
			return err
		}
		if added {
			fmt.Printf("Added source line to %s\n", tgt.rcFile)
		} else {
			fmt.Printf("%s already sources the completion script\n", tgt.rcFile)
		}
	}

	fmt.Println("Completion installed. Restart your shell to pick it up.")
	return nil
}

// ensureSourceLine appends line to rcFile unless it is already present,
// creating the file if needed. Reports whether the line was added.
func ensureSourceLine(rcFile, line string) (bool, error) {
	existing, err := os.ReadFile(rcFile)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", rcFile, err)
	}
	if strings.Contains(string(existing), line) {
		return false, nil
	}

	f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", rcFile, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# parselmouth shell completion\n%s\n", line); err != nil {
		return false, fmt.Errorf("updating %s: %w", rcFile, err)
	}
	return true, nil
}
