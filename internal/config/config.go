// Package config is the on-disk configuration layer: peek size/mode,
// worker count, batch size, include/exclude globs, per-language extension
// overrides, and the ignore_errors default (spec.md §6's named parameters,
// given project-wide defaults instead of requiring every call site to
// repeat them).
//
// Grounded on the teacher's internal/config/config.go — trimmed to this
// system's domain: SearchRanking, SemanticScoring, FeatureFlags, and
// PropagationConfigDir are all search/indexing concepts this system
// doesn't have (DESIGN.md, "internal/config").
package config

import "github.com/standardbeagle/astengine/internal/astparse"

// Config is the project-wide default configuration (spec.md §6's named
// parameters of read_ast, given durable defaults).
type Config struct {
	Version int
	Project Project
	Parse   Parse
	Include []string
	Exclude []string
	// LanguageExtensions lets a project add or override the built-in
	// extension->language table (spec.md §6, "Extension filter for
	// auto-detect") without recompiling, e.g. {"mjs": "javascript"}.
	LanguageExtensions map[string]string
}

type Project struct {
	Root string
	Name string
}

// Parse carries the defaults for spec.md §4.5/§4.6/§6: extraction detail,
// peek behavior, worker count, batch size, and the ignore_errors default.
type Parse struct {
	Source    string // "none" | "path" | "lines_only" | "full"
	Structure string // "none" | "minimal" | "full"
	Context   string // "none" | "node_types_only" | "normalized" | "native"
	PeekMode  string // "auto" | "smart" | "full" | "none" | "custom"
	PeekSize  int

	Workers      int // 0 = auto-detect (NumCPU-1, at least 1)
	BatchSize    int
	IgnoreErrors bool
}

// Default returns the built-in configuration: the richest extraction
// config (astparse.DefaultExtractionConfig's settings expressed as their
// string names) plus the teacher's default exclusion glob list, adapted
// from language-agnostic source trees to this system's file-format scope.
func Default() *Config {
	return &Config{
		Version: 1,
		Project: Project{Root: "."},
		Parse: Parse{
			Source:    "full",
			Structure: "full",
			Context:   "native",
			PeekMode:  "auto",
			PeekSize:  120,
			Workers:   0,
			BatchSize: 2048,
		},
		Include: []string{},
		Exclude: defaultExclude(),
	}
}

// ToExtractionConfig translates the string-keyed on-disk settings into the
// parse engine's typed ExtractionConfig (spec.md §4.5).
func (c *Config) ToExtractionConfig() astparse.ExtractionConfig {
	cfg := astparse.ExtractionConfig{PeekSize: c.Parse.PeekSize}

	switch c.Parse.Source {
	case "path":
		cfg.Source = astparse.SourcePath
	case "lines_only":
		cfg.Source = astparse.SourceLinesOnly
	case "none":
		cfg.Source = astparse.SourceNone
	default:
		cfg.Source = astparse.SourceFull
	}

	switch c.Parse.Structure {
	case "minimal":
		cfg.Structure = astparse.StructureMinimal
	case "none":
		cfg.Structure = astparse.StructureNone
	default:
		cfg.Structure = astparse.StructureFull
	}

	switch c.Parse.Context {
	case "node_types_only":
		cfg.Context = astparse.ContextNodeTypesOnly
	case "normalized":
		cfg.Context = astparse.ContextNormalized
	case "none":
		cfg.Context = astparse.ContextNone
	default:
		cfg.Context = astparse.ContextNative
	}

	switch c.Parse.PeekMode {
	case "full":
		cfg.Peek = astparse.PeekFull
	case "none":
		cfg.Peek = astparse.PeekNone
	case "custom":
		cfg.Peek = astparse.PeekCustom
	default:
		cfg.Peek = astparse.PeekSmart
	}

	return cfg
}

// defaultExclude is the teacher's build-artifact/test/binary exclusion
// glob list (config.go's Exclude default), unchanged: it is language- and
// domain-agnostic source-tree hygiene, not an LCI-specific concept.
func defaultExclude() []string {
	return []string{
		"**/.git/**",
		"**/.*/**",

		"**/node_modules/**",
		"**/vendor/**",
		"**/bower_components/**",
		"**/jspm_packages/**",

		"**/dist/**",
		"**/build/**",
		"**/out/**",
		"**/target/**",
		"**/bin/**",
		"**/obj/**",
		"**/*.min.js",
		"**/*.min.css",
		"**/*.bundle.js",
		"**/*.chunk.js",
		"**/*.min.map",

		"**/*.avif",
		"**/*.webp",
		"**/*.wasm",
		"**/*.woff",
		"**/*.woff2",
		"**/*.ttf",
		"**/*.eot",
		"**/*.otf",
	}
}
