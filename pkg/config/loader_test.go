package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtmpl/pkg/config"
)

func TestLoad(t *testing.T) {
	type mailerConfig struct {
		From      string   `env:"TEST_MAIL_FROM,required"`
		Languages []string `env:"TEST_MAIL_LANGUAGES" envDefault:"en"`
	}

	t.Setenv("TEST_MAIL_FROM", "noreply@example.com")
	t.Setenv("TEST_MAIL_LANGUAGES", "en,fr,nl")

	var cfg mailerConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "noreply@example.com", cfg.From)
	assert.Equal(t, []string{"en", "fr", "nl"}, cfg.Languages)
}

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		Languages []string `env:"TEST_UNSET_LANGUAGES" envDefault:"en"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, []string{"en"}, cfg.Languages)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type strictConfig struct {
		Token string `env:"TEST_ABSENT_TOKEN,required"`
	}

	var cfg strictConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *struct{}
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
	}

	t.Setenv("TEST_CACHED_VALUE", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	// A changed environment must not leak into an already-loaded type.
	t.Setenv("TEST_CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first.Value, second.Value)
}
