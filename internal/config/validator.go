package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/standardbeagle/astengine/internal/asterrors"
)

// Validator validates configuration and sets smart defaults, adapted from
// the teacher's Validator to this system's Project/Parse fields.
type Validator struct{}

func NewValidator() *Validator { return &Validator{} }

// ValidateAndSetDefaults validates cfg and fills in runtime-dependent
// defaults (worker count) that Default() leaves at their auto-detect
// sentinel.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateProject(&cfg.Project); err != nil {
		return asterrors.NewBinderError("project", err)
	}
	if err := v.validateParse(&cfg.Parse); err != nil {
		return asterrors.NewBinderError("parse", err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

func (v *Validator) validateProject(project *Project) error {
	if project.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

func (v *Validator) validateParse(p *Parse) error {
	if p.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", p.Workers)
	}
	if p.BatchSize < 0 {
		return fmt.Errorf("batch_size cannot be negative, got %d", p.BatchSize)
	}
	if p.PeekSize < 0 {
		return fmt.Errorf("peek_size cannot be negative, got %d", p.PeekSize)
	}
	switch p.PeekMode {
	case "auto", "smart", "full", "none", "custom":
	default:
		return fmt.Errorf("peek_mode must be one of auto|smart|full|none|custom, got %q", p.PeekMode)
	}
	return nil
}

// setSmartDefaults resolves the worker-count and batch-size auto-detect
// sentinels (0) to concrete values (spec.md §4.6, "Ranges are sized so
// each worker sees roughly ceil(files / threads) files").
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Parse.Workers == 0 {
		cfg.Parse.Workers = max(1, runtime.NumCPU()-1)
	}
	if cfg.Parse.BatchSize == 0 {
		cfg.Parse.BatchSize = 2048
	}
}

// ValidateConfig is a convenience function for quick validation.
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
