package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var typescriptLanguage = treeparse.NewLanguage("typescript", tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()))

func typescriptNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_declaration":   {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"method_definition":      {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindProperty},
		"arrow_function":         {SemanticType: semtype.CodeOf("COMPUTATION_LAMBDA"), NameStrategy: nodeconfig.None},
		"class_declaration":      {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"interface_declaration":  {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"type_alias_declaration": {SemanticType: semtype.CodeOf("TYPE_REFERENCE"), NameStrategy: nodeconfig.FindIdentifier},
		"enum_declaration":       {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"variable_declarator":    {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"import_statement":       {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"export_statement":       {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.None},
		"call_expression":        {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"member_expression":      {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"if_statement":           {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":          {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"try_statement":          {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"return_statement":       {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"statement_block":        {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":             {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"type_identifier":        {SemanticType: semtype.CodeOf("TYPE_REFERENCE"), NameStrategy: nodeconfig.NodeText},
		"string":                 {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"comment":                {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
	}
}

func NewTypeScript() Adapter {
	return &base{
		name:    "typescript",
		aliases: []string{"ts", "tsx"},
		lang:    typescriptLanguage,
		configs: typescriptNodeConfigs(),
	}
}
