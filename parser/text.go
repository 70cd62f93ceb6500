package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TextLoader handles plain text (.txt) and markdown (.md) files. Blank
// lines separate statements: each non-empty paragraph becomes one
// problem statement.
type TextLoader struct{}

func (l *TextLoader) SupportedFormats() []string { return []string{"txt", "md"} }

func (l *TextLoader) Load(ctx context.Context, path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}

	label := filepath.Base(path)
	var statements []Statement
	for _, para := range strings.Split(string(data), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		statements = append(statements, Statement{
			Text:  para,
			Label: label,
		})
	}

	return &LoadResult{
		Statements: statements,
		Method:     "native",
	}, nil
}
