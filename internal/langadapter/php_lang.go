package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var phpLanguage = treeparse.NewLanguage("php", tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()))

func phpNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_definition":   {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"method_declaration":    {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier},
		"class_declaration":     {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"interface_declaration": {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"namespace_definition":  {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.FindIdentifier},
		"property_declaration":  {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"namespace_use_declaration": {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"function_call_expression": {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"member_access_expression": {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"if_statement":            {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"while_statement":         {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"foreach_statement":       {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"try_statement":           {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"catch_clause":            {SemanticType: semtype.CodeOf("ERROR_CATCH"), NameStrategy: nodeconfig.None},
		"return_statement":        {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"compound_statement":      {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"name":                     {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"variable_name":            {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"string":                   {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"comment":                  {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
	}
}

func NewPHP() Adapter {
	return &base{
		name:    "php",
		lang:    phpLanguage,
		configs: phpNodeConfigs(),
	}
}
