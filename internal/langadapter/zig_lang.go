package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

// zig is a community-maintained grammar outside the tree-sitter org, kept
// on its own binding path the same way the teacher's community parser
// framework singled out non-standard grammars.
var zigLanguage = treeparse.NewLanguage("zig", tree_sitter.NewLanguage(tree_sitter_zig.Language()))

func zigNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"FnProto":            {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"ContainerDecl":      {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.None},
		"VarDecl":            {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"TestDecl":           {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.None},
		"builtin_call":       {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"call_expression":    {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"field_access":       {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"if_statement":        {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":        {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_statement":       {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"switch_expression":     {SemanticType: semtype.CodeOf("FLOW_SWITCH"), NameStrategy: nodeconfig.None},
		"return_statement":       {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"block":                   {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"IDENTIFIER":               {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"STRINGLITERAL":            {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"line_comment":             {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"ERROR":                    {SemanticType: semtype.CodeOf("PARSER_ERROR"), NameStrategy: nodeconfig.None},
	}
}

func NewZig() Adapter {
	return &base{
		name:    "zig",
		lang:    zigLanguage,
		configs: zigNodeConfigs(),
	}
}
