package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jameslittle/stork/internal/query"
)

func printPrettyJSON(output *query.Output) {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not serialize search results: %s\n", err)
		return
	}
	fmt.Println(string(data))
}
