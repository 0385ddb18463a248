package config

import (
	"testing"

	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/stretchr/testify/assert"
)

func TestDefault_MatchesRichestExtractionSettings(t *testing.T) {
	cfg := Default()
	got := cfg.ToExtractionConfig()
	want := astparse.DefaultExtractionConfig()

	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.Structure, got.Structure)
	assert.Equal(t, want.Context, got.Context)
	assert.Equal(t, want.Peek, got.Peek)
	assert.Equal(t, want.PeekSize, got.PeekSize)
}

func TestToExtractionConfig_UnrecognizedValuesFallBackToRichest(t *testing.T) {
	cfg := Default()
	cfg.Parse.Source = "garbage"
	cfg.Parse.Structure = "garbage"
	cfg.Parse.Context = "garbage"
	cfg.Parse.PeekMode = "garbage"

	got := cfg.ToExtractionConfig()

	assert.Equal(t, astparse.SourceFull, got.Source)
	assert.Equal(t, astparse.StructureFull, got.Structure)
	assert.Equal(t, astparse.ContextNative, got.Context)
	assert.Equal(t, astparse.PeekSmart, got.Peek)
}

func TestToExtractionConfig_RecognizesEveryEnumValue(t *testing.T) {
	cfg := Default()
	cfg.Parse.Source = "none"
	cfg.Parse.Structure = "none"
	cfg.Parse.Context = "node_types_only"
	cfg.Parse.PeekMode = "none"

	got := cfg.ToExtractionConfig()

	assert.Equal(t, astparse.SourceNone, got.Source)
	assert.Equal(t, astparse.StructureNone, got.Structure)
	assert.Equal(t, astparse.ContextNodeTypesOnly, got.Context)
	assert.Equal(t, astparse.PeekNone, got.Peek)

	cfg.Parse.Source = "path"
	cfg.Parse.Structure = "minimal"
	cfg.Parse.Context = "normalized"
	cfg.Parse.PeekMode = "full"

	got = cfg.ToExtractionConfig()

	assert.Equal(t, astparse.SourcePath, got.Source)
	assert.Equal(t, astparse.StructureMinimal, got.Structure)
	assert.Equal(t, astparse.ContextNormalized, got.Context)
	assert.Equal(t, astparse.PeekFull, got.Peek)

	cfg.Parse.Source = "lines_only"
	cfg.Parse.Context = "none"
	cfg.Parse.PeekMode = "custom"

	got = cfg.ToExtractionConfig()

	assert.Equal(t, astparse.SourceLinesOnly, got.Source)
	assert.Equal(t, astparse.ContextNone, got.Context)
	assert.Equal(t, astparse.PeekCustom, got.Peek)
}
