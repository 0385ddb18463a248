package langadapter

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is the process-wide adapter registry of spec.md §4.4: factories
// keyed by canonical language name, an alias->canonical map, and a parse
// dispatch entry point. Read-mostly after initialization; safe for
// concurrent reads from multiple parse threads (spec.md §5).
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() Adapter
	aliases   map[string]string
}

// NewRegistry builds a registry with every language this rendition ships
// registered once, mirroring the teacher's single static registration pass
// in internal/parser/parser_language_setup.go and
// internal/parser/community_parser.go (for the non-standard Zig grammar).
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]func() Adapter),
		aliases:   make(map[string]string),
	}
	for _, reg := range []struct {
		name     string
		aliases  []string
		factory  func() Adapter
	}{
		{"go", []string{"golang"}, NewGo},
		{"python", []string{"py"}, NewPython},
		{"javascript", []string{"js"}, NewJavaScript},
		{"typescript", []string{"ts"}, NewTypeScript},
		{"java", nil, NewJava},
		{"cpp", []string{"c++", "cc", "cxx"}, NewCPP},
		{"csharp", []string{"c#", "cs"}, NewCSharp},
		{"php", nil, NewPHP},
		{"rust", []string{"rs"}, NewRust},
		{"zig", nil, NewZig},
	} {
		r.register(reg.name, reg.aliases, reg.factory)
	}
	return r
}

func (r *Registry) register(name string, aliases []string, factory func() Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	r.aliases[name] = name
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = name
	}
}

// Canonicalize resolves an alias (or the name itself) to its canonical
// registered name, or "" if unknown.
func (r *Registry) Canonicalize(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.aliases[strings.ToLower(name)]
}

// New constructs a fresh adapter for the named language (resolving
// aliases first). Each call returns a brand-new Adapter value — spec.md §5
// requires a fresh adapter per file, not a shared/pooled one.
func (r *Registry) New(name string) (Adapter, error) {
	canonical := r.Canonicalize(name)
	if canonical == "" {
		return nil, fmt.Errorf("langadapter: unsupported language %q", name)
	}
	r.mu.RLock()
	factory := r.factories[canonical]
	r.mu.RUnlock()
	return factory(), nil
}

// SupportedLanguages lists every canonical language name, backing
// ast_supported_languages() (spec.md §6).
func (r *Registry) SupportedLanguages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	return out
}

// extensionToLanguage is the deterministic lowercase extension->language
// table for auto-detect (spec.md §6). Extensions not present make
// DetectLanguage report ok=false; the scheduler turns that into a "could
// not detect language" binder error for the file.
var extensionToLanguage = map[string]string{
	"cpp": "cpp", "cc": "cpp", "cxx": "cpp", "c++": "cpp",
	"hpp": "cpp", "hh": "cpp", "hxx": "cpp", "h++": "cpp",
	"c": "c", "h": "c",
	"py": "python", "pyi": "python", "pyw": "python",
	"js": "javascript", "jsx": "javascript", "mjs": "javascript",
	"ts": "typescript", "tsx": "typescript",
	"go": "go",
	"rb": "ruby",
	"sql": "sql",
	"rs": "rust",
	"md": "markdown", "markdown": "markdown",
	"java": "java",
	"php": "php",
	"html": "html", "htm": "html",
	"css": "css",
	"json": "json",
	"sh": "bash", "bash": "bash",
	"swift": "swift",
	"r": "r",
	"kt": "kotlin", "kts": "kotlin",
	"cs": "csharp",
	"lua": "lua",
	"tf": "hcl", "tfvars": "hcl",
	"graphql": "graphql", "gql": "graphql",
	"toml": "toml",
	"zig": "zig",
}

// DetectLanguage resolves a file path's language from the suffix after its
// last "." (spec.md §8 property 9: "detect_language(path) depends only on
// the suffix after the last '.', case-insensitively"). Returns ("", false)
// when the extension is unrecognized.
func DetectLanguage(path string) (string, bool) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return "", false
	}
	ext := strings.ToLower(path[idx+1:])
	lang, ok := extensionToLanguage[ext]
	return lang, ok
}
