// Package config decodes the TOML build configuration file into
// internal/domain's Config type. This is an explicitly thin layer: no
// schema validation framework, just decode-plus-defaults, since the
// config file itself is treated as the already-validated input surface.
package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/jameslittle/stork/internal/domain"
)

// ErrConfigParse wraps any TOML decode failure.
var ErrConfigParse = errors.New("config: failed to parse configuration")

const (
	defaultExcerptBuffer                 = 8
	defaultExcerptsPerResult             = 5
	defaultDisplayedResultsCount         = 10
	defaultMinimumIndexedSubstringLength = 3
)

type rawFile struct {
	Path                 string            `toml:"path"`
	URL                  string            `toml:"url"`
	Contents             string            `toml:"contents"`
	Title                string            `toml:"title"`
	ResultURL            string            `toml:"url_as_title,omitempty"`
	Filetype             string            `toml:"filetype"`
	HTMLSelectorOverride string            `toml:"html_selector_override"`
	Fields               map[string]string `toml:"fields"`
}

type rawStemming struct {
	Language string `toml:"language"`
}

type rawInput struct {
	Files                         []rawFile          `toml:"files"`
	BaseDirectory                 string             `toml:"base_directory"`
	URLPrefix                     string             `toml:"url_prefix"`
	TitleBoost                    string             `toml:"title_boost"`
	Stemming                      string             `toml:"stemming"`
	StemmingLanguage              string             `toml:"stemming_language"`
	HTMLSelector                  string             `toml:"html_selector"`
	FrontmatterHandling           string             `toml:"frontmatter_handling"`
	MinimumIndexedSubstringLength *int               `toml:"minimum_indexed_substring_length"`
	FieldWeights                  map[string]float64 `toml:"field_weights"`
}

type rawOutput struct {
	Filename              string `toml:"filename"`
	Debug                 bool   `toml:"debug"`
	ExcerptBuffer         *int   `toml:"excerpt_buffer"`
	ExcerptsPerResult     *int   `toml:"excerpts_per_result"`
	DisplayedResultsCount *int   `toml:"displayed_results_count"`
}

type rawConfig struct {
	Input  rawInput  `toml:"input"`
	Output rawOutput `toml:"output"`
}

// Parse decodes data as a TOML build configuration and returns the
// validated domain.Config, with documented defaults applied for any
// field the file omits.
func Parse(data []byte) (domain.Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := domain.Config{
		Input: domain.InputConfig{
			BaseDirectory:                 raw.Input.BaseDirectory,
			URLPrefix:                     raw.Input.URLPrefix,
			TitleBoost:                    parseTitleBoost(raw.Input.TitleBoost),
			Stemming:                      parseStemming(raw.Input.Stemming, raw.Input.StemmingLanguage),
			HTMLSelector:                  raw.Input.HTMLSelector,
			FrontmatterHandling:           parseFrontmatterHandling(raw.Input.FrontmatterHandling),
			MinimumIndexedSubstringLength: intOrDefault(raw.Input.MinimumIndexedSubstringLength, defaultMinimumIndexedSubstringLength),
			FieldWeights:                  raw.Input.FieldWeights,
		},
		Output: domain.OutputConfig{
			Filename:              raw.Output.Filename,
			Debug:                 raw.Output.Debug,
			ExcerptBuffer:         intOrDefault(raw.Output.ExcerptBuffer, defaultExcerptBuffer),
			ExcerptsPerResult:     intOrDefault(raw.Output.ExcerptsPerResult, defaultExcerptsPerResult),
			DisplayedResultsCount: intOrDefault(raw.Output.DisplayedResultsCount, defaultDisplayedResultsCount),
		},
	}

	for _, f := range raw.Input.Files {
		cfg.Input.Files = append(cfg.Input.Files, parseFile(f))
	}

	return cfg, nil
}

func parseFile(f rawFile) domain.FileConfig {
	var source domain.DataSource
	switch {
	case f.Path != "":
		source = domain.File(f.Path)
	case f.URL != "":
		source = domain.URL(f.URL)
	default:
		source = domain.Contents(f.Contents)
	}

	return domain.FileConfig{
		Source:               source,
		Title:                f.Title,
		URL:                  f.ResultURL,
		Filetype:             parseFiletype(f.Filetype),
		HTMLSelectorOverride: f.HTMLSelectorOverride,
		Fields:               f.Fields,
	}
}

func parseFiletype(s string) domain.Filetype {
	switch s {
	case "PlainText":
		return domain.FiletypePlainText
	case "HTML":
		return domain.FiletypeHTML
	case "Markdown":
		return domain.FiletypeMarkdown
	case "SRTSubtitle":
		return domain.FiletypeSRTSubtitle
	default:
		return ""
	}
}

func parseTitleBoost(s string) domain.TitleBoost {
	switch s {
	case "Moderate":
		return domain.TitleBoostModerate
	case "Large":
		return domain.TitleBoostLarge
	case "Ridiculous":
		return domain.TitleBoostRidiculous
	default:
		return domain.TitleBoostMinimal
	}
}

func parseFrontmatterHandling(s string) domain.FrontmatterHandling {
	switch s {
	case "Omit":
		return domain.FrontmatterOmit
	case "Parse":
		return domain.FrontmatterParse
	default:
		return domain.FrontmatterIgnore
	}
}

// parseStemming interprets the [input].stemming value as either the bare
// string "None" or a language code, mirroring the original's
// Stemming::Language(code) enum variant carrying its own payload.
func parseStemming(mode, language string) domain.Stemming {
	if mode == "" || mode == "None" {
		return domain.Stemming{Mode: domain.StemmingNone}
	}
	lang := language
	if lang == "" {
		lang = mode
	}
	return domain.Stemming{Mode: domain.StemmingLanguage, Language: lang}
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
