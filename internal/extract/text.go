// Package extract holds the collaborators that turn uploaded documents
// into the in-memory inputs the parsers consume: a text extractor for
// seating-plan documents and a grid loader for schedule workbooks.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// TextExtractor returns the full text of a source document as a single
// whitespace-normalized string
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// PdftotextExtractor extracts text by invoking the pdftotext binary.
// Tool failures are surfaced with the underlying cause; there is no
// retry.
type PdftotextExtractor struct {
	binary string
}

// NewPdftotextExtractor creates an extractor using the given binary,
// or "pdftotext" from PATH when empty
func NewPdftotextExtractor(binary string) *PdftotextExtractor {
	if binary == "" {
		binary = "pdftotext"
	}
	return &PdftotextExtractor{binary: binary}
}

// Extract runs the tool against the document and returns its text with
// all whitespace runs collapsed to single spaces
func (e *PdftotextExtractor) Extract(ctx context.Context, path string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, "-layout", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("extract text from %s: %w: %s", path, err, detail)
		}
		return "", fmt.Errorf("extract text from %s: %w", path, err)
	}
	return NormalizeWhitespace(stdout.String()), nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses every run of whitespace, newlines
// included, to a single space and trims the ends
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
