package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqvalidator/pkg/config"
	"github.com/dmitrymomot/reqvalidator/pkg/logger"
	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

type fileConfig struct {
	Layout string `env:"CFGTEST_FILE_LAYOUT"`
	Max    int    `env:"CFGTEST_FILE_MAX"`
}

type requiredConfig struct {
	Required string `env:"CFGTEST_REQUIRED,required"`
}

func TestLoad_ValidatorConfig(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		var cfg validator.Config
		err := config.Load(&cfg,
			config.WithPrefix(validator.EnvPrefix),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, validator.DefaultConfig(), cfg)
	})

	t.Run("prefixed variables override defaults", func(t *testing.T) {
		t.Setenv("VALIDATOR_DATE_LAYOUT", "02/01/2006")
		t.Setenv("VALIDATOR_MAX_TEXT_LENGTH", "512")

		var cfg validator.Config
		require.NoError(t, config.Load(&cfg, config.WithPrefix(validator.EnvPrefix)))
		assert.Equal(t, "02/01/2006", cfg.DateLayout)
		assert.Equal(t, 512, cfg.MaxTextLength)
	})

	t.Run("invalid number", func(t *testing.T) {
		var cfg validator.Config
		err := config.Load(&cfg,
			config.WithPrefix(validator.EnvPrefix),
			config.WithEnvironment(map[string]string{"VALIDATOR_MAX_TEXT_LENGTH": "lots"}),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})
}

func TestLoad_LoggerConfig(t *testing.T) {
	var cfg logger.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "text",
		"SERVICE_NAME": "forms",
	}))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, logger.FormatText, cfg.Format)
	assert.Equal(t, "forms", cfg.Service)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("reads explicit file", func(t *testing.T) {
		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.test")))
		assert.Equal(t, "02.01.2006", cfg.Layout)
		assert.Equal(t, 64, cfg.Max)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/does-not-exist.env"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *validator.Config
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}
