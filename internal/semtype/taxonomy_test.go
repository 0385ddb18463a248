package semtype

import "testing"

func TestRoundTripNaming(t *testing.T) {
	// Property 5 (spec.md §8): for every code returned by any adapter,
	// code(name(c)) == c.
	for _, c := range AllCodes() {
		n := Name(c)
		if n == "" {
			t.Fatalf("code %d has no name", c)
		}
		if got := CodeOf(n); got != c {
			t.Errorf("CodeOf(Name(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestParserConstructIsZero(t *testing.T) {
	if ParserConstruct != 0 {
		t.Fatalf("ParserConstruct must be code 0, got %d", ParserConstruct)
	}
	if Name(ParserConstruct) != "PARSER_CONSTRUCT" {
		t.Fatalf("code 0 must name PARSER_CONSTRUCT, got %q", Name(ParserConstruct))
	}
}

func TestCodesAreMultiplesOfFour(t *testing.T) {
	for _, c := range AllCodes() {
		if uint8(c)%4 != 0 {
			t.Errorf("code %d is not a multiple of 4", c)
		}
	}
}

func TestUnknownNameReturnsSentinel(t *testing.T) {
	if CodeOf("NOT_A_REAL_TYPE") != Unknown {
		t.Fatalf("expected sentinel 255 for unknown name")
	}
}

func TestPredicatesCrossLanguage(t *testing.T) {
	// Scenario B (spec.md §8): main()/println-style call nodes resolve to
	// is_definition/is_call regardless of source language; the taxonomy
	// itself is what's under test here, not a real parse.
	fn := CodeOf("DEFINITION_FUNCTION")
	if !IsDefinition(fn) {
		t.Errorf("DEFINITION_FUNCTION must satisfy IsDefinition")
	}
	if IsCall(fn) {
		t.Errorf("DEFINITION_FUNCTION must not satisfy IsCall")
	}

	call := CodeOf("COMPUTATION_CALL")
	if !IsCall(call) {
		t.Errorf("COMPUTATION_CALL must satisfy IsCall")
	}
	if IsDefinition(call) {
		t.Errorf("COMPUTATION_CALL must not satisfy IsDefinition")
	}

	access := CodeOf("COMPUTATION_ACCESS")
	if IsCall(access) {
		t.Errorf("COMPUTATION_ACCESS (same kind as CALL, different super-type) must not satisfy IsCall")
	}
}

func TestRefinementBitsIgnoredByPredicates(t *testing.T) {
	base := CodeOf("DEFINITION_FUNCTION")
	refined := Code(uint8(base) | 0x3) // set the low 2 language-specific bits
	if !IsDefinition(refined) {
		t.Errorf("predicates must ignore the low 2 refinement bits")
	}
}

func TestSuperKindAndKindNames(t *testing.T) {
	c := CodeOf("DEFINITION_FUNCTION")
	if SuperKindName(c) != "COMPUTATION" {
		t.Errorf("SuperKindName = %q, want COMPUTATION", SuperKindName(c))
	}
	if KindName(c) != "DEFINITION" {
		t.Errorf("KindName = %q, want DEFINITION", KindName(c))
	}
}
