package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader extracts one problem statement per page of a PDF document.
type PDFLoader struct{}

func (l *PDFLoader) SupportedFormats() []string { return []string{"pdf"} }

func (l *PDFLoader) Load(ctx context.Context, path string) (*LoadResult, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	label := filepath.Base(path)
	totalPages := reader.NumPage()
	statements := make([]Statement, 0, totalPages)

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		statements = append(statements, Statement{
			Text:  text,
			Label: label,
			Page:  i,
		})
	}

	if len(statements) == 0 {
		return nil, fmt.Errorf("no text extracted from PDF")
	}

	return &LoadResult{
		Statements: statements,
		Method:     "native",
	}, nil
}
