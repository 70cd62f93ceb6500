// Command hummbl decomposes free-text problem statements into typed
// components, dependency orderings, and reasoning traces.
//
// Usage:
//
//	hummbl decompose "Build the API, then write the tests" \
//	  --constraint "2 weeks" --constraint "solo"
//
//	hummbl decompose --file backlog.xlsx --log-db ~/.hummbl/runs.db
//
//	hummbl eval --dataset cases.xlsx
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
