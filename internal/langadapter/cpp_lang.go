package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var cppLanguage = treeparse.NewLanguage("cpp", tree_sitter.NewLanguage(tree_sitter_cpp.Language()))

func cppNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_definition":    {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"class_specifier":        {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"struct_specifier":       {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"namespace_definition":   {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeQualifiedName},
		"declaration":            {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"preproc_include":        {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"call_expression":        {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"field_expression":       {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"qualified_identifier":   {SemanticType: semtype.CodeOf("NAME_QUALIFIED"), NameStrategy: nodeconfig.NodeText, NativeStrategy: nodeconfig.NativeQualifiedName},
		"binary_expression":      {SemanticType: semtype.CodeOf("OPERATOR_ARITHMETIC"), NameStrategy: nodeconfig.None},
		"if_statement":           {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":          {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_statement":        {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"try_statement":          {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"catch_clause":           {SemanticType: semtype.CodeOf("ERROR_CATCH"), NameStrategy: nodeconfig.None},
		"throw_statement":         {SemanticType: semtype.CodeOf("ERROR_THROW"), NameStrategy: nodeconfig.None},
		"return_statement":        {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"compound_statement":       {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":                {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"string_literal":            {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"comment":                   {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"ERROR":                     {SemanticType: semtype.CodeOf("PARSER_ERROR"), NameStrategy: nodeconfig.None},
	}
}

func NewCPP() Adapter {
	return &base{
		name:        "cpp",
		aliases:     []string{"c++", "cc", "cxx"},
		lang:        cppLanguage,
		configs:     cppNodeConfigs(),
		qualifyName: cppQualifyName,
	}
}

func cppQualifyName(node treeparse.Node, source []byte, leaf string) string {
	return ExtractQualifiedName(node, source, leaf, "namespace_identifier", "qualified_identifier")
}
