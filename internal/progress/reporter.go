// Package progress reports pipeline progress for a single document run.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback while a document moves through the
// extract → request → format pipeline. Updates happen synchronously between
// stages.
type Reporter interface {
	Start(steps int)
	Step(message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// CIReporter when running under CI.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar on stderr.
type TerminalReporter struct {
	bar     *progressbar.ProgressBar
	current int
}

func (r *TerminalReporter) Start(steps int) {
	r.current = 0
	r.bar = progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.current++
		r.bar.Describe(message)
		_ = r.bar.Set(r.current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	steps   int
	current int
}

func (r *CIReporter) Start(steps int) {
	r.steps = steps
	r.current = 0
}

func (r *CIReporter) Step(message string) {
	r.current++
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", r.current, r.steps, message)
}

func (r *CIReporter) Finish() {}
