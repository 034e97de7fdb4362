// Package rename computes and applies the single file rename of an
// invocation: same directory, new stem, original extension, no overwrites.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
)

// Plan describes one intended rename. It is built per invocation and never
// persisted.
type Plan struct {
	SourcePath string
	TargetPath string
	// CollisionResolved is set when the preferred target existed and a
	// numeric disambiguator had to be appended.
	CollisionResolved bool
}

// NewPlan computes the target path for renaming sourcePath to the given
// stem, keeping the original extension and directory. If the preferred
// target already exists (and is not the source itself), "-1", "-2", … are
// appended to the stem until a free name is found.
//
// The source path is cleaned first so spelling variants ("./file.pdf")
// compare equal to the joined target and are recognized as self-renames.
func NewPlan(sourcePath, stem string) (*Plan, error) {
	src := filepath.Clean(sourcePath)
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("source file: %w", err)
	}

	dir := filepath.Dir(src)
	ext := filepath.Ext(src)

	target := filepath.Join(dir, stem+ext)
	if target == src || !exists(target) {
		return &Plan{SourcePath: src, TargetPath: target}, nil
	}

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, n, ext))
		if candidate == src || !exists(candidate) {
			return &Plan{SourcePath: src, TargetPath: candidate, CollisionResolved: true}, nil
		}
	}
}

// Apply executes the plan. A dry run touches nothing; otherwise exactly one
// atomic rename happens, and on failure the source is left untouched.
func Apply(p *Plan, dryRun bool) error {
	if dryRun {
		return nil
	}
	if p.SourcePath == p.TargetPath {
		return nil
	}
	if err := os.Rename(p.SourcePath, p.TargetPath); err != nil {
		return fmt.Errorf("renaming %s: %w", p.SourcePath, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
