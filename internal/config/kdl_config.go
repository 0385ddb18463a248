package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// ConfigFileName is the per-project config file this system looks for,
// renamed from the teacher's ".lci.kdl" (spec.md's domain has no
// "lightning code index" concept to preserve in the filename).
const ConfigFileName = ".ast-engine.kdl"

// LoadKDL loads ConfigFileName from projectRoot, returning (nil, nil) if
// absent so callers fall back to Default() — the same "no config is not
// an error" contract as the teacher's LoadKDL.
func LoadKDL(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}

	if cfg.Project.Root == "" || !filepath.IsAbs(cfg.Project.Root) {
		absRoot := projectRoot
		if cfg.Project.Root != "" {
			absRoot = filepath.Join(projectRoot, cfg.Project.Root)
		}
		if abs, err := filepath.Abs(absRoot); err == nil {
			absRoot = abs
		}
		cfg.Project.Root = filepath.Clean(absRoot)
	}

	return cfg, nil
}

// parseKDL parses the document body on top of Default(), the same
// defaults-then-override pattern as the teacher's parseKDL.
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "parse":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "source":
					assignSimpleString(cn, "source", func(v string) { cfg.Parse.Source = v })
				case "structure":
					assignSimpleString(cn, "structure", func(v string) { cfg.Parse.Structure = v })
				case "context":
					assignSimpleString(cn, "context", func(v string) { cfg.Parse.Context = v })
				case "peek_mode":
					assignSimpleString(cn, "peek_mode", func(v string) { cfg.Parse.PeekMode = v })
				case "peek_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Parse.PeekSize = v
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Parse.Workers = v
					}
				case "batch_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Parse.BatchSize = v
					}
				case "ignore_errors":
					if v, ok := firstBoolArg(cn); ok {
						cfg.Parse.IgnoreErrors = v
					}
				}
			}
		case "include":
			if patterns := collectStringArgs(n); len(patterns) > 0 {
				cfg.Include = patterns
			}
		case "exclude":
			if patterns := collectStringArgs(n); len(patterns) > 0 {
				cfg.Exclude = append(cfg.Exclude, patterns...)
			}
		case "language_extensions":
			if cfg.LanguageExtensions == nil {
				cfg.LanguageExtensions = make(map[string]string)
			}
			for _, cn := range n.Children {
				if lang, ok := firstStringArg(cn); ok {
					cfg.LanguageExtensions[nodeName(cn)] = lang
				}
			}
		}
	}

	return cfg, nil
}

// nodeName, firstIntArg, firstStringArg, firstBoolArg, collectStringArgs,
// and assignSimpleString are the teacher's kdl-go document-model helpers
// (internal/config/kdl_config.go), unchanged: they are generic KDL value
// extraction, not LCI-specific.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
