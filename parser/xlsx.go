package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader reads problem statements from spreadsheet files: one
// statement per non-empty row, first column. Remaining columns are
// joined into the statement so tabular context travels with it.
type XLSXLoader struct{}

func (l *XLSXLoader) SupportedFormats() []string { return []string{"xlsx", "xls"} }

func (l *XLSXLoader) Load(ctx context.Context, path string) (*LoadResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	var statements []Statement

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		for _, row := range rows {
			text := strings.TrimSpace(strings.Join(row, " "))
			if text == "" {
				continue
			}
			statements = append(statements, Statement{
				Text:  text,
				Label: sheet,
			})
		}
	}

	if len(statements) == 0 {
		return nil, fmt.Errorf("no statements found in XLSX")
	}

	return &LoadResult{
		Statements: statements,
		Method:     "native",
	}, nil
}
