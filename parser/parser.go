// Package parser loads problem statements out of files so the CLI and
// the eval harness can feed documents to the decomposition operator.
// The core engine never touches the filesystem; everything here is
// caller-side plumbing.
package parser

import "context"

// Statement is a single problem statement pulled from a file.
type Statement struct {
	Text  string // the statement itself
	Label string // heading, sheet name, or filename it came from
	Page  int    // page number for paged formats, 0 otherwise
}

// LoadResult is what a loader produces from a statement file.
type LoadResult struct {
	Statements []Statement
	Method     string // "native"
}

// Loader reads problem statements from a specific file format.
type Loader interface {
	Load(ctx context.Context, path string) (*LoadResult, error)
	SupportedFormats() []string
}
