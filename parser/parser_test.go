package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestTextLoaderSplitsParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statements.txt")
	content := "Build the API, then test it\n\n\nDesign the schema and write docs\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := (&TextLoader{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(res.Statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(res.Statements))
	}
	if res.Statements[0].Text != "Build the API, then test it" {
		t.Errorf("statement 0 = %q", res.Statements[0].Text)
	}
	if res.Statements[1].Text != "Design the schema and write docs" {
		t.Errorf("statement 1 = %q", res.Statements[1].Text)
	}
	for i, s := range res.Statements {
		if s.Label != "statements.txt" {
			t.Errorf("statement %d label = %q, want the filename", i, s.Label)
		}
	}
	if res.Method != "native" {
		t.Errorf("method = %q, want native", res.Method)
	}
}

func TestTextLoaderMissingFile(t *testing.T) {
	_, err := (&TextLoader{}).Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestXLSXLoaderReadsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statements.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Build the cache")
	f.SetCellValue("Sheet1", "A2", "Migrate the database, then audit access")
	f.SetCellValue("Sheet1", "B2", "in 2 weeks")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	res, err := (&XLSXLoader{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(res.Statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(res.Statements))
	}
	if res.Statements[0].Text != "Build the cache" {
		t.Errorf("statement 0 = %q", res.Statements[0].Text)
	}
	// Extra columns travel with the statement.
	if want := "Migrate the database, then audit access in 2 weeks"; res.Statements[1].Text != want {
		t.Errorf("statement 1 = %q, want %q", res.Statements[1].Text, want)
	}
	if res.Statements[0].Label != "Sheet1" {
		t.Errorf("label = %q, want the sheet name", res.Statements[0].Label)
	}
}

func TestXLSXLoaderEmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := (&XLSXLoader{}).Load(context.Background(), path); err == nil {
		t.Fatal("Load succeeded on a workbook with no statements")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, format := range []string{"txt", "md", "pdf", "xlsx", "xls"} {
		if _, err := r.Get(format); err != nil {
			t.Errorf("Get(%q) failed: %v", format, err)
		}
	}
	if _, err := r.Get("docx"); err == nil {
		t.Error("Get(docx) succeeded, want an error for unregistered formats")
	}

	custom := &TextLoader{}
	r.Register("log", custom)
	got, err := r.Get("log")
	if err != nil {
		t.Fatalf("Get(log) failed: %v", err)
	}
	if got != custom {
		t.Error("Get(log) did not return the registered loader")
	}
}
