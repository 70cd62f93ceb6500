package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSXDataset reads evaluation cases from a spreadsheet. The first
// row is a header; recognized columns (case-insensitive) are:
//
//	name, statement, constraints (semicolon-separated),
//	expect_components, expect_constraints, expect_depends_on,
//	expect_parallel_with, expect_path_len, expect_low_confidence,
//	expect_warning
//
// Rows with an empty statement are skipped. Only the first sheet is read.
func LoadXLSXDataset(path string) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Dataset{}, fmt.Errorf("dataset has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Dataset{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return Dataset{}, fmt.Errorf("dataset has no case rows")
	}

	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["statement"]; !ok {
		return Dataset{}, fmt.Errorf("dataset is missing a statement column")
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	intCell := func(row []string, name string) int {
		n, _ := strconv.Atoi(cell(row, name))
		return n
	}

	ds := Dataset{Name: sheets[0]}
	for ri, row := range rows[1:] {
		statement := cell(row, "statement")
		if statement == "" {
			continue
		}
		c := Case{
			Name:                cell(row, "name"),
			Statement:           statement,
			ExpectComponents:    intCell(row, "expect_components"),
			ExpectConstraints:   intCell(row, "expect_constraints"),
			ExpectDependsOn:     intCell(row, "expect_depends_on"),
			ExpectParallelWith:  intCell(row, "expect_parallel_with"),
			ExpectPathLen:       intCell(row, "expect_path_len"),
			ExpectLowConfidence: parseBool(cell(row, "expect_low_confidence")),
			ExpectWarning:       cell(row, "expect_warning"),
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("row %d", ri+2)
		}
		if raw := cell(row, "constraints"); raw != "" {
			for _, entry := range strings.Split(raw, ";") {
				if entry = strings.TrimSpace(entry); entry != "" {
					c.Constraints = append(c.Constraints, entry)
				}
			}
		}
		ds.Cases = append(ds.Cases, c)
	}
	return ds, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}
