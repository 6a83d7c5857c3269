// Command stork-search is the query-only half of Stork's feature split:
// it links only internal/domain, internal/codec, internal/cache, and
// internal/query, and can serve search results against a prebuilt index
// without pulling in any of the document-parsing or index-assembly
// dependencies cmd/stork needs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jameslittle/stork/internal/cache"
	"github.com/jameslittle/stork/internal/query"
)

const (
	exitSuccess = 0
	exitFailure = 1
	cacheName   = "a"
)

const helpText = `
stork-search  --  query-only Stork binary

USAGE:
    stork-search [./index.st] "[query]"

        Given a search index file, searches for the given query and outputs
        the results in JSON.
`

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 3 || args[1] == "--help" || args[1] == "-h" {
		fmt.Fprint(os.Stderr, helpText)
		if len(args) >= 2 && (args[1] == "--help" || args[1] == "-h") {
			return exitSuccess
		}
		return exitFailure
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %s: %s\n", args[1], err)
		return exitFailure
	}

	if _, err := cache.ParseAndCache(data, cacheName); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing index: %s\n", err)
		return exitFailure
	}

	output, err := query.SearchFromCache(cacheName, args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error performing search: %s\n", err)
		return exitFailure
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not serialize search results: %s\n", err)
		return exitFailure
	}
	fmt.Println(string(encoded))

	fmt.Fprintf(os.Stderr, "\n%s search results.\n", humanize.Comma(int64(output.TotalHitCount)))
	return exitSuccess
}
