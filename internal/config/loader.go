package config

import "path/filepath"

// Load resolves configuration for root: Default() overridden by
// ConfigFileName if present in root, then enriched with the project's
// .gitignore exclusions and detected build-output directories, then
// validated (worker-count and batch-size auto-detect defaults
// resolved). Simplified from the teacher's two-tier global+project
// Load/LoadWithRoot (internal/config/config.go) to a single
// project-root lookup — this system has no per-user global config
// concept to merge in.
func Load(root string) (*Config, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	cfg, err := LoadKDL(abs)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
		cfg.Project.Root = abs
	}

	cfg.Exclude = DeduplicatePatterns(append(cfg.Exclude, discoveredExcludes(abs)...))

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// discoveredExcludes gathers exclusion globs this system can infer from
// the project tree itself: .gitignore entries and build-output
// directories named in language manifests (package.json, Cargo.toml,
// pyproject.toml, tsconfig.json, vite.config.*).
func discoveredExcludes(root string) []string {
	var patterns []string

	gi := NewGitignoreParser()
	if err := gi.LoadGitignore(root); err == nil {
		patterns = append(patterns, gi.GetExclusionPatterns()...)
	}

	patterns = append(patterns, NewBuildArtifactDetector(root).DetectOutputDirectories()...)

	return patterns
}
