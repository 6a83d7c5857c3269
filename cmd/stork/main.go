// Command stork builds search indexes from a TOML configuration and
// serves or searches them. This file is intentionally minimal - all
// business logic lives in internal/.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jameslittle/stork/internal/build"
	"github.com/jameslittle/stork/internal/cache"
	"github.com/jameslittle/stork/internal/codec"
	"github.com/jameslittle/stork/internal/config"
	"github.com/jameslittle/stork/internal/domain"
	"github.com/jameslittle/stork/internal/query"
)

const (
	exitSuccess = 0
	exitFailure = 1

	// cacheName is the key the CLI's search path parses and caches an
	// index under. There's only ever one index loaded per process
	// invocation, so this is fixed rather than configurable.
	cacheName = "a"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

const helpText = `
Stork  --  by the stork-search maintainers
Impossibly fast web search, made for static sites.

USAGE:
    stork --build [config.toml]

        Builds a search index from the specifications in the TOML configuration
        file.

    stork --test [config.toml]

        Builds a search index from the TOML configuration, then serves a test
        webpage on http://127.0.0.1:1612 that shows a search bar using that index.

    stork --search [./index.st] "[query]"

        Given a search index file, searches for the given query and outputs
        the results in JSON.
`

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprint(os.Stderr, helpText)
		return exitFailure
	}

	switch args[1] {
	case "--build":
		return buildHandler(args)
	case "--test":
		return testHandler(args)
	case "--search":
		return searchHandler(args)
	case "--help", "-h":
		fmt.Print(helpText)
		return exitSuccess
	default:
		fmt.Fprint(os.Stderr, helpText)
		return exitFailure
	}
}

// loadConfig reads the TOML config from args[2] if present, else from
// stdin, mirroring --build's optional positional config path.
func loadConfig(args []string) (domain.Config, error) {
	var data []byte
	var err error
	if len(args) > 2 {
		data, err = os.ReadFile(args[2])
		if err != nil {
			return domain.Config{}, fmt.Errorf("could not read configuration file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return domain.Config{}, fmt.Errorf("could not read configuration from stdin: %w", err)
		}
	}
	return config.Parse(data)
}

func buildIndex(args []string) (domain.Config, *domain.Index, int) {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read configuration: %s\n", err)
		return domain.Config{}, nil, exitFailure
	}

	idx, docErrs, err := build.Build(cfg)
	for _, de := range docErrs {
		fmt.Println(de.Error())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not generate index: %s\n", err)
		return domain.Config{}, nil, exitFailure
	}

	return cfg, idx, exitSuccess
}

func buildHandler(args []string) int {
	startTime := time.Now()

	cfg, idx, code := buildIndex(args)
	if code != exitSuccess {
		return code
	}
	buildTime := time.Now()

	data, err := codec.Encode(idx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not generate index: %s\n", err)
		return exitFailure
	}

	var bytesWritten int
	if !cfg.Output.Debug {
		if err := os.WriteFile(cfg.Output.Filename, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write index file: %s\n", err)
			return exitFailure
		}
		bytesWritten = len(data)
	}
	endTime := time.Now()

	sizeLine := "(Maybe you're in debug mode.)"
	if bytesWritten > 0 && len(idx.Entries) > 0 {
		sizeLine = fmt.Sprintf("%s bytes/entry (average entry size is %s bytes)",
			humanize.Comma(int64(bytesWritten/len(idx.Entries))),
			humanize.Comma(int64(bytesWritten/len(idx.Entries))))
	}

	fmt.Printf(
		"Index built, %s bytes written to %s.\n%s\n%s to build index, %s to write file, %s total\n",
		humanize.Comma(int64(bytesWritten)),
		cfg.Output.Filename,
		sizeLine,
		buildTime.Sub(startTime),
		endTime.Sub(buildTime),
		endTime.Sub(startTime),
	)
	return exitSuccess
}

func testHandler(args []string) int {
	_, idx, code := buildIndex(args)
	if code != exitSuccess {
		return code
	}
	return serveTestPage(idx)
}

func searchHandler(args []string) int {
	if len(args) < 4 {
		fmt.Fprint(os.Stderr, helpText)
		return exitFailure
	}
	startTime := time.Now()

	data, err := os.ReadFile(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %s: %s\n", args[2], err)
		return exitFailure
	}
	readTime := time.Now()

	if _, err := cache.ParseAndCache(data, cacheName); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing index: %s\n", err)
		return exitFailure
	}

	output, err := query.SearchFromCache(cacheName, args[3])
	endTime := time.Now()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error performing search: %s\n", err)
		return exitFailure
	}

	printPrettyJSON(output)

	fmt.Fprintf(os.Stderr,
		"\n%d search results.\nRead %s bytes from %s\n%s to read index file, %s to get search results, %s total\n",
		output.TotalHitCount,
		humanize.Comma(int64(len(data))),
		args[2],
		readTime.Sub(startTime),
		endTime.Sub(readTime),
		endTime.Sub(startTime),
	)
	return exitSuccess
}
