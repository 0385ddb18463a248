package astparse

import (
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

// extractNative populates ASTNode.Native for function-like nodes and
// qualified-name-bearing nodes per spec.md §4.2's native extraction
// strategies. Invoked only when ContextNative is requested and the node's
// configuration names a native strategy — the parse engine never pays for
// this on the common path (spec.md §4.5: "invokes them only if requested").
func extractNative(a langadapter.Adapter, nc nodeconfig.Config, node treeparse.Node, source []byte) *Native {
	switch nc.NativeStrategy {
	case nodeconfig.NativeFunctionSignature:
		return extractFunctionSignature(node, source)
	case nodeconfig.NativeQualifiedName:
		return &Native{QualifiedName: a.ExtractName(node, source)}
	case nodeconfig.NativeAnnotations:
		return extractAnnotations(node, source)
	default:
		return nil
	}
}

// extractFunctionSignature walks a function-like node's parameter list
// (field name "parameters", the convention every grammar in this module's
// language set uses) and its modifier children, producing Native.Parameters
// and Native.Modifiers. Defaults/variadic/optional detection is grammar-name
// based since no single tree-sitter field captures them uniformly.
func extractFunctionSignature(node treeparse.Node, source []byte) *Native {
	native := &Native{SignatureKind: "function"}

	params, ok := node.ChildByFieldName("parameters")
	if ok {
		count := params.ChildCount()
		for i := uint(0); i < count; i++ {
			c, ok := params.Child(i)
			if !ok || !c.IsNamed() {
				continue
			}
			native.Parameters = append(native.Parameters, extractParameter(c, source))
		}
	}

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if !ok {
			continue
		}
		if isModifierKind(c.Kind()) {
			native.Modifiers = append(native.Modifiers, langadapter.Sanitize(c.Text()))
		}
	}

	return native
}

func extractParameter(node treeparse.Node, source []byte) Parameter {
	p := Parameter{}
	if name, ok := node.ChildByFieldName("name"); ok {
		p.Name = langadapter.Sanitize(name.Text())
	} else if name, ok := node.ChildByFieldName("pattern"); ok {
		p.Name = langadapter.Sanitize(name.Text())
	} else {
		p.Name = langadapter.Sanitize(node.Text())
	}
	if typ, ok := node.ChildByFieldName("type"); ok {
		p.Type = langadapter.Sanitize(typ.Text())
	}
	if def, ok := node.ChildByFieldName("value"); ok {
		p.Default = langadapter.Sanitize(def.Text())
		p.Optional = true
	} else if def, ok := node.ChildByFieldName("default_value"); ok {
		p.Default = langadapter.Sanitize(def.Text())
		p.Optional = true
	}
	switch node.Kind() {
	case "variadic_parameter", "rest_pattern", "spread_parameter":
		p.Variadic = true
	}
	return p
}

func isModifierKind(kind string) bool {
	switch kind {
	case "modifiers", "modifier", "visibility_modifier", "storage_class_specifier":
		return true
	}
	return false
}

// extractAnnotations collects decorator/annotation/attribute children of
// node, one entry per annotation (spec.md §4.2, Native.Annotations).
func extractAnnotations(node treeparse.Node, source []byte) *Native {
	native := &Native{SignatureKind: "annotated"}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if !ok {
			continue
		}
		switch c.Kind() {
		case "annotation", "decorator", "attribute", "attribute_item":
			native.Annotations = append(native.Annotations, langadapter.Sanitize(c.Text()))
		}
	}
	return native
}
