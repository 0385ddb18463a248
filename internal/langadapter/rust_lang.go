package langadapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

var rustLanguage = treeparse.NewLanguage("rust", tree_sitter.NewLanguage(tree_sitter_rust.Language()))

func rustNodeConfigs() nodeconfig.Table {
	return nodeconfig.Table{
		"function_item":        {SemanticType: semtype.CodeOf("DEFINITION_FUNCTION"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeFunctionSignature},
		"impl_item":            {SemanticType: semtype.CodeOf("DEFINITION_CLASS"), NameStrategy: nodeconfig.FindIdentifier},
		"struct_item":          {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"enum_item":            {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"trait_item":           {SemanticType: semtype.CodeOf("TYPE_COMPOSITE"), NameStrategy: nodeconfig.FindIdentifier},
		"mod_item":             {SemanticType: semtype.CodeOf("ORGANIZATION_NAMESPACE"), NameStrategy: nodeconfig.FindIdentifier, NativeStrategy: nodeconfig.NativeQualifiedName},
		"let_declaration":      {SemanticType: semtype.CodeOf("DEFINITION_VARIABLE"), NameStrategy: nodeconfig.FindAssignmentTarget},
		"use_declaration":      {SemanticType: semtype.CodeOf("ORGANIZATION_IMPORT"), NameStrategy: nodeconfig.None},
		"attribute_item":       {SemanticType: semtype.CodeOf("METADATA_ANNOTATION"), NameStrategy: nodeconfig.None},
		"call_expression":      {SemanticType: semtype.CodeOf("COMPUTATION_CALL"), NameStrategy: nodeconfig.FirstChild},
		"field_expression":     {SemanticType: semtype.CodeOf("COMPUTATION_ACCESS"), NameStrategy: nodeconfig.FindProperty},
		"scoped_identifier":    {SemanticType: semtype.CodeOf("NAME_QUALIFIED"), NameStrategy: nodeconfig.NodeText, NativeStrategy: nodeconfig.NativeQualifiedName},
		"binary_expression":    {SemanticType: semtype.CodeOf("OPERATOR_ARITHMETIC"), NameStrategy: nodeconfig.None},
		"if_expression":        {SemanticType: semtype.CodeOf("FLOW_CONDITIONAL"), NameStrategy: nodeconfig.None},
		"match_expression":     {SemanticType: semtype.CodeOf("FLOW_SWITCH"), NameStrategy: nodeconfig.None},
		"for_expression":       {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"while_expression":     {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"loop_expression":      {SemanticType: semtype.CodeOf("FLOW_LOOP"), NameStrategy: nodeconfig.None},
		"return_expression":    {SemanticType: semtype.CodeOf("EXECUTION_RETURN"), NameStrategy: nodeconfig.None},
		"block":                {SemanticType: semtype.CodeOf("EXECUTION_BLOCK"), NameStrategy: nodeconfig.None},
		"identifier":           {SemanticType: semtype.CodeOf("NAME_IDENTIFIER"), NameStrategy: nodeconfig.NodeText},
		"type_identifier":      {SemanticType: semtype.CodeOf("TYPE_REFERENCE"), NameStrategy: nodeconfig.NodeText},
		"string_literal":       {SemanticType: semtype.CodeOf("LITERAL_STRING"), NameStrategy: nodeconfig.None},
		"line_comment":         {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"block_comment":        {SemanticType: semtype.CodeOf("METADATA_DOC"), NameStrategy: nodeconfig.None},
		"ERROR":                {SemanticType: semtype.CodeOf("PARSER_ERROR"), NameStrategy: nodeconfig.None},
	}
}

func rustIsPublic(node treeparse.Node, source []byte) bool {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if ok && c.Kind() == "visibility_modifier" {
			return true
		}
	}
	return false
}

func NewRust() Adapter {
	return &base{
		name:        "rust",
		aliases:     []string{"rs"},
		lang:        rustLanguage,
		configs:     rustNodeConfigs(),
		isPublic:    rustIsPublic,
		qualifyName: rustQualifyName,
	}
}

func rustQualifyName(node treeparse.Node, source []byte, leaf string) string {
	return ExtractQualifiedName(node, source, leaf, "identifier", "scoped_identifier")
}
