// Package extract turns a document file into plain text for analysis.
//
// PDFs go through text-layer extraction; everything else is treated as UTF-8
// text. Extraction is deliberately shallow: the goal is enough content for a
// title suggestion, not a faithful document model.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxFileSize caps how large a document extraction will touch at all.
const maxFileSize = 32 << 20

// Extractor extracts text content from a document on disk.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// FileExtractor is the default Extractor, dispatching on file extension.
type FileExtractor struct{}

// New returns a ready-to-use FileExtractor.
func New() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("reading document %s: is a directory", path)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("document %s too large: %d bytes (max %d)", path, info.Size(), maxFileSize)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDF(path)
	}
	return extractText(path)
}

// extractText reads the file as-is and rejects anything that is not valid
// UTF-8; binary blobs make useless prompts.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %s is not a valid text file or PDF", path)
	}
	return string(data), nil
}
