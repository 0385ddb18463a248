package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var pythonLanguage = treeparse.NewLanguage("python", tree_sitter.NewLanguage(tree_sitter_python.Language()))

func pythonNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_definition": {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"lambda":              {SemanticType: semtype.CodeOf("COMPUTATION_LAMBDA"), NameStrategy: nodeconfig.None},
		"class_definition":    {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"module":              {SemanticType: semtype.CodeOf("DEFINITION_MODULE"), NameStrategy: nodeconfig.None},
		"assignment":          {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"import_statement":    {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"import_from_statement": {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"decorator":            {SemanticType: semtype.CodeOf("METADATA_ANNOTATION"), NameStrategy: nodeconfig.FindIdentifier},
		"call":                 {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"attribute":            {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"binary_operator":      {SemanticType: semtype.CodeOf("OPERATOR_ARITHMETIC"), NameStrategy: nodeconfig.None},
		"boolean_operator":     {SemanticType: semtype.CodeOf("OPERATOR_LOGICAL"), NameStrategy: nodeconfig.None},
		"comparison_operator":  {SemanticType: semtype.CodeOf("OPERATOR_COMPARISON"), NameStrategy: nodeconfig.None},
		"if_statement":         {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":        {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_statement":      {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"try_statement":        {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"except_clause":        {SemanticType: semtype.CodeOf("ERROR_CATCH"), NameStrategy: nodeconfig.None},
		"raise_statement":      {SemanticType: semtype.CodeOf("ERROR_THROW"), NameStrategy: nodeconfig.None},
		"return_statement":     {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"block":                {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":           {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"string":               {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"integer":               {SemanticType: semtype.CodeOf("LITERAL_NUMBER"), NameStrategy: nodeconfig.None},
		"comment":              {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"ERROR":                {SemanticType: semtype.CodeOf("PARSER_ERROR"), NameStrategy: nodeconfig.None},
	}
}

func pythonIsPublic(node treeparse.Node, source []byte) bool {
	name, ok := node.ChildByFieldName("name")
	if !ok {
		name = node
	}
	t := name.Text()
	return len(t) > 0 && t[0] != '_'
}

func NewPython() Adapter {
	return &base{
		name:     "python",
		aliases:  []string{"py"},
		lang:     pythonLanguage,
		configs:  pythonNodeConfigs(),
		isPublic: pythonIsPublic,
	}
}
