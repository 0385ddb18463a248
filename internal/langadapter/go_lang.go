package langadapter

import (
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var goLanguage = treeparse.NewLanguage("go", tree_sitter.NewLanguage(tree_sitter_go.Language()))

func goNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_declaration": {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"method_declaration":   {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"func_literal":         {SemanticType: semtype.CodeOf("COMPUTATION_LAMBDA"), NameStrategy: nodeconfig.None},
		"type_declaration":     {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"type_spec":            {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"struct_type":          {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.None},
		"interface_type":       {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.None},
		"var_declaration":      {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"const_declaration":    {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"short_var_declaration": {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"package_clause":       {SemanticType: semtype.CodeOf("DEFINITION_MODULE"), NameStrategy: nodeconfig.FindIdentifier},
		"import_declaration":   {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"call_expression":      {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"selector_expression":  {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"binary_expression":    {SemanticType: semtype.CodeOf("OPERATOR_ARITHMETIC"), NameStrategy: nodeconfig.None},
		"assignment_statement": {SemanticType: semtype.CodeOf("OPERATOR_ASSIGNMENT"), NameStrategy: nodeconfig.None},
		"if_statement":         {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":        {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"switch_statement":     {SemanticType: semtype.CodeOf("FLOW_SWITCH"), NameStrategy: nodeconfig.None},
		"return_statement":     {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"defer_statement":      {SemanticType: semtype.CodeOf("ERROR_FINALLY"), NameStrategy: nodeconfig.None},
		"go_statement":         {SemanticType: semtype.CodeOf("EXECUTION_STATEMENT"), NameStrategy: nodeconfig.None},
		"block":                {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":           {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"type_identifier":      {SemanticType: semtype.CodeOf("TYPE_REFERENCE"), NameStrategy: nodeconfig.NodeText},
		"field_identifier":     {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"interpreted_string_literal": {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"int_literal":          {SemanticType: semtype.CodeOf("LITERAL_NUMBER"), NameStrategy: nodeconfig.None},
		"comment":              {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
	}
}

func goIsPublic(node treeparse.Node, source []byte) bool {
	name, ok := node.ChildByFieldName("name")
	if !ok {
		name = node
	}
	t := name.Text()
	if len(t) == 0 {
		return false
	}
	r := rune(t[0])
	return r >= 'A' && r <= 'Z'
}

func NewGo() Adapter {
	return &base{
		name:     "go",
		aliases:  []string{"golang"},
		lang:     goLanguage,
		configs:  goNodeConfigs(),
		isPublic: goIsPublic,
	}
}
