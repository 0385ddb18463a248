package semtype

// Predicates per spec.md §4.1/§6. Each is a compile-time-constant
// comparison against the high 6 bits of the code (super-kind, kind, and,
// where the category names a single super-type rather than a whole kind,
// the super-type too) so that the low 2 language-specific refinement bits
// never defeat a match.

func bandEquals(c Code, sk SuperKind, k Kind) bool {
	return SuperKindOf(c) == sk && KindOf(c) == k
}

func codeEquals(c Code, want Code) bool {
	return bandMask(c) == bandMask(want)
}

// IsDefinition: any DEFINITION_* super-type (function, variable, class, module).
func IsDefinition(c Code) bool { return bandEquals(c, Computation, Definition) }

// IsCall: specifically COMPUTATION_CALL, not every ComputationNode super-type.
func IsCall(c Code) bool { return codeEquals(c, CodeOf("COMPUTATION_CALL")) }

// IsLiteral: any super-type within the Literal kind, including the
// PARSER_CONSTRUCT fallback (spec.md §3 invariant 4 places it there so that
// unrecognized raw types still satisfy is_literal-adjacent coarse queries).
func IsLiteral(c Code) bool { return bandEquals(c, DataStructure, Literal) }

// IsControlFlow: the FlowControl kind (conditionals, loops, switches, jumps).
func IsControlFlow(c Code) bool { return bandEquals(c, ControlEffects, FlowControl) }

// IsIdentifier: specifically NAME_IDENTIFIER.
func IsIdentifier(c Code) bool { return codeEquals(c, CodeOf("NAME_IDENTIFIER")) }

// IsOperator: any Operator super-type.
func IsOperator(c Code) bool { return bandEquals(c, Computation, Operator) }

// IsType: any Type super-type.
func IsType(c Code) bool { return bandEquals(c, DataStructure, Type) }

// IsExternal: any External super-type.
func IsExternal(c Code) bool { return bandEquals(c, MetaExternal, External) }

// IsErrorHandling: any ErrorHandling super-type.
func IsErrorHandling(c Code) bool { return bandEquals(c, ControlEffects, ErrorHandling) }

// IsMetadata: any Metadata super-type.
func IsMetadata(c Code) bool { return bandEquals(c, MetaExternal, Metadata) }

// IsParserSpecific: any ParserSpecific super-type.
func IsParserSpecific(c Code) bool { return bandEquals(c, MetaExternal, ParserSpecific) }

// IsPunctuation: specifically PARSER_PUNCTUATION.
func IsPunctuation(c Code) bool { return codeEquals(c, CodeOf("PARSER_PUNCTUATION")) }

// IsKind reports whether c belongs to the named kind (e.g. "DEFINITION",
// "FLOW_CONTROL"), backing a generic is_kind(code, name) scalar (spec.md §6).
func IsKind(c Code, kindName string) bool {
	return KindName(c) == kindName
}
