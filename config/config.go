package config

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/trueform/compiler/ir"
)

// Runtime is the compiler's process-level configuration: everything
// that governs how builds run, independent of any one Document.
type Runtime struct {
	StagedFeaturePolicy ir.StagedPolicy `toml:"staged_feature_policy"`

	CacheCapacity int `toml:"cache_capacity"`

	SessionTTLSeconds int `toml:"session_ttl_seconds"`
	SessionMaxCount   int `toml:"session_max_count"`

	DevLogging bool `toml:"dev_logging"`
}

// SessionTTL returns SessionTTLSeconds as a time.Duration.
func (r Runtime) SessionTTL() time.Duration {
	return time.Duration(r.SessionTTLSeconds) * time.Second
}

// Defaults returns the baseline Runtime a fresh deployment starts from.
func Defaults() Runtime {
	return Runtime{
		StagedFeaturePolicy: ir.PolicyWarn,
		CacheCapacity:       1024,
		SessionTTLSeconds:   900,
		SessionMaxCount:     64,
		DevLogging:          false,
	}
}

// Load decodes a TOML file at path into a Runtime seeded with Defaults,
// so an omitted key keeps its default rather than zeroing out.
func Load(path string) (Runtime, error) {
	rt := Defaults()
	if _, err := toml.DecodeFile(path, &rt); err != nil {
		return Runtime{}, ir.NewError(ir.CodeValidationShape, "failed to decode runtime config", "referenceId", path).WithContext("cause", err.Error())
	}
	return rt, nil
}

// Validate checks that rt's fields are internally consistent.
func Validate(rt Runtime) error {
	switch rt.StagedFeaturePolicy {
	case ir.PolicyAllow, ir.PolicyWarn, ir.PolicyError:
	default:
		return ir.NewError(ir.CodeValidationEnum, "unknown staged feature policy", "referenceId", string(rt.StagedFeaturePolicy))
	}
	if rt.CacheCapacity < 0 {
		return ir.NewError(ir.CodeValidationShape, "cache_capacity must be non-negative")
	}
	if rt.SessionTTLSeconds <= 0 {
		return ir.NewError(ir.CodeValidationShape, "session_ttl_seconds must be positive")
	}
	if rt.SessionMaxCount < 0 {
		return ir.NewError(ir.CodeValidationShape, "session_max_count must be non-negative")
	}
	return nil
}
