package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var javascriptLanguage = treeparse.NewLanguage("javascript", tree_sitter.NewLanguage(tree_sitter_javascript.Language()))

func javascriptNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_declaration":   {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"generator_function_declaration": {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier},
		"arrow_function":         {SemanticType: semtype.CodeOf("COMPUTATION_LAMBDA"), NameStrategy: nodeconfig.None},
		"function_expression":    {SemanticType: semtype.CodeOf("COMPUTATION_LAMBDA"), NameStrategy: nodeconfig.FindIdentifier},
		"method_definition":      {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindProperty},
		"class_declaration":      {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"variable_declarator":    {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"import_statement":       {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"export_statement":       {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.None},
		"call_expression":        {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"member_expression":      {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"binary_expression":      {SemanticType: semtype.CodeOf("OPERATOR_ARITHMETIC"), NameStrategy: nodeconfig.None},
		"assignment_expression":  {SemanticType: semtype.CodeOf("OPERATOR_ASSIGNMENT"), NameStrategy: nodeconfig.None},
		"if_statement":           {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":          {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_statement":        {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"switch_statement":       {SemanticType: semtype.CodeOf("FLOW_SWITCH"), NameStrategy: nodeconfig.None},
		"try_statement":          {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"catch_clause":           {SemanticType: semtype.CodeOf("ERROR_CATCH"), NameStrategy: nodeconfig.None},
		"throw_statement":        {SemanticType: semtype.CodeOf("ERROR_THROW"), NameStrategy: nodeconfig.None},
		"return_statement":       {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"statement_block":        {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":              {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"property_identifier":    {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"string":                 {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"number":                 {SemanticType: semtype.CodeOf("LITERAL_NUMBER"), NameStrategy: nodeconfig.None},
		"comment":                {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"ERROR":                  {SemanticType: semtype.CodeOf("PARSER_ERROR"), NameStrategy: nodeconfig.None},
	}
}

func NewJavaScript() Adapter {
	return &base{
		name:    "javascript",
		aliases: []string{"js", "jsx", "mjs"},
		lang:    javascriptLanguage,
		configs: javascriptNodeConfigs(),
	}
}
