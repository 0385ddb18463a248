package semtype

// NormalizedTypeConstants is the fixed vocabulary of canonical
// normalized-type strings adapters' NormalizedType() may return instead of
// ad hoc per-grammar names, giving cross-language normalized-type
// comparisons a stable string form beyond the 64 taxonomy names.
//
// Supplemented from original_source/src/include/node_config.hpp's
// `NormalizedTypes` namespace (SPEC_FULL.md, "Supplemented features" item 1;
// not re-verifiable on disk after the _examples/ data loss, but consistent
// with spec.md and not excluded by any of its Non-goals).
var NormalizedTypeConstants = struct {
	FunctionDeclaration string
	ClassDeclaration    string
	VariableDeclaration string
	ModuleDeclaration   string
	BinaryExpression    string
	CallExpression      string
	IfStatement         string
	ForStatement         string
	WhileStatement      string
	TryStatement        string
	ImportStatement     string
	Identifier          string
	Literal             string
	Comment             string
}{
	FunctionDeclaration: "function_declaration",
	ClassDeclaration:    "class_declaration",
	VariableDeclaration: "variable_declaration",
	ModuleDeclaration:   "module_declaration",
	BinaryExpression:    "binary_expression",
	CallExpression:      "call_expression",
	IfStatement:         "if_statement",
	ForStatement:        "for_statement",
	WhileStatement:      "while_statement",
	TryStatement:        "try_statement",
	ImportStatement:     "import_statement",
	Identifier:          "identifier",
	Literal:             "literal",
	Comment:             "comment",
}
