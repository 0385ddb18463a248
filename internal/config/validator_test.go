package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndSetDefaults_FillsAutoDetectSentinels(t *testing.T) {
	cfg := Default()
	cfg.Project.Root = "/test/root"
	cfg.Parse.Workers = 0
	cfg.Parse.BatchSize = 0

	require.NoError(t, NewValidator().ValidateAndSetDefaults(cfg))

	assert.Greater(t, cfg.Parse.Workers, 0)
	assert.Equal(t, 2048, cfg.Parse.BatchSize)
}

func TestValidateAndSetDefaults_EmptyProjectRootFails(t *testing.T) {
	cfg := Default()
	cfg.Project.Root = ""

	err := NewValidator().ValidateAndSetDefaults(cfg)
	assert.Error(t, err)
}

func TestValidateParse_RejectsNegativeFields(t *testing.T) {
	v := NewValidator()

	assert.Error(t, v.validateParse(&Parse{Workers: -1, PeekMode: "auto"}))
	assert.Error(t, v.validateParse(&Parse{BatchSize: -1, PeekMode: "auto"}))
	assert.Error(t, v.validateParse(&Parse{PeekSize: -1, PeekMode: "auto"}))
}

func TestValidateParse_RejectsUnknownPeekMode(t *testing.T) {
	v := NewValidator()
	err := v.validateParse(&Parse{PeekMode: "bogus"})
	assert.Error(t, err)
}

func TestValidateParse_AcceptsKnownPeekModes(t *testing.T) {
	v := NewValidator()
	for _, mode := range []string{"auto", "smart", "full", "none", "custom"} {
		assert.NoError(t, v.validateParse(&Parse{PeekMode: mode}))
	}
}

func TestValidateConfig_ConvenienceFunction(t *testing.T) {
	cfg := Default()
	cfg.Project.Root = "/test/root"
	assert.NoError(t, ValidateConfig(cfg))

	invalid := Default()
	invalid.Project.Root = ""
	assert.Error(t, ValidateConfig(invalid))
}

func TestSetSmartDefaults_PreservesExplicitWorkerCount(t *testing.T) {
	cfg := Default()
	cfg.Parse.Workers = 3

	NewValidator().setSmartDefaults(cfg)

	assert.Equal(t, 3, cfg.Parse.Workers)
}
