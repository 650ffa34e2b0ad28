package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/config"
	"github.com/trueform/compiler/ir"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaultsAreValid() {
	require.NoError(s.T(), config.Validate(config.Defaults()))
}

func (s *ConfigSuite) TestLoadOverridesDefaults() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "runtime.toml")
	body := "staged_feature_policy = \"error\"\ncache_capacity = 64\n"
	require.NoError(s.T(), os.WriteFile(path, []byte(body), 0o600))

	rt, err := config.Load(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ir.PolicyError, rt.StagedFeaturePolicy)
	require.Equal(s.T(), 64, rt.CacheCapacity)
	require.Equal(s.T(), config.Defaults().SessionTTLSeconds, rt.SessionTTLSeconds)
}

func (s *ConfigSuite) TestLoadUnknownPathFails() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.toml"))
	require.Error(s.T(), err)
}

func (s *ConfigSuite) TestValidateRejectsUnknownPolicy() {
	rt := config.Defaults()
	rt.StagedFeaturePolicy = ir.StagedPolicy("bogus")
	require.True(s.T(), ir.AsCode(config.Validate(rt), ir.CodeValidationEnum))
}
