package langadapter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var csharpLanguage = treeparse.NewLanguage("csharp", tree_sitter.NewLanguage(tree_sitter_csharp.Language()))

func csharpNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"method_declaration":      {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"constructor_declaration": {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier},
		"class_declaration":       {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"interface_declaration":   {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"struct_declaration":      {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"namespace_declaration":   {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.FindIdentifier},
		"field_declaration":       {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"property_declaration":    {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindIdentifier},
		"using_directive":         {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"attribute":               {SemanticType: semtype.CodeOf("METADATA_ANNOTATION"), NameStrategy: nodeconfig.FindIdentifier},
		"invocation_expression":   {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"member_access_expression": {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"if_statement":            {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"for_statement":           {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_statement":         {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"try_statement":           {SemanticType: semtype.CodeOf("ERROR_TRY"), NameStrategy: nodeconfig.None},
		"catch_clause":            {SemanticType: semtype.CodeOf("ERROR_CATCH"), NameStrategy: nodeconfig.None},
		"throw_statement":         {SemanticType: semtype.CodeOf("ERROR_THROW"), NameStrategy: nodeconfig.None},
		"return_statement":        {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"block":                    {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":                {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"string_literal":           {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"comment":                  {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
	}
}

func csharpIsPublic(node treeparse.Node, source []byte) bool {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if ok && c.Kind() == "modifier" && strings.Contains(string(c.Text()), "public") {
			return true
		}
	}
	return false
}

func NewCSharp() Adapter {
	return &base{
		name:     "csharp",
		aliases:  []string{"c#", "cs"},
		lang:     csharpLanguage,
		configs:  csharpNodeConfigs(),
		isPublic: csharpIsPublic,
	}
}
