package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer out of a PDF. Scanned PDFs without a text
// layer come back empty, which the caller surfaces as an empty-title error
// further down the pipeline.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading PDF %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from PDF %s: %w", path, err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, reader); err != nil {
		return "", fmt.Errorf("extracting text from PDF %s: %w", path, err)
	}
	return sb.String(), nil
}
