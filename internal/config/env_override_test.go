package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("OODESIGN_LOG_LEVEL lowers case", func(t *testing.T) {
		t.Setenv("OODESIGN_LOG_LEVEL", "DEBUG")
		t.Setenv("OODESIGN_INTEGRAND", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "square", cfg.Integration.Integrand)
	})

	t.Run("OODESIGN_INTEGRAND replaces integrand", func(t *testing.T) {
		t.Setenv("OODESIGN_LOG_LEVEL", "")
		t.Setenv("OODESIGN_INTEGRAND", "expr: math.Sqrt(x)")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "expr: math.Sqrt(x)", cfg.Integration.Integrand)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv("OODESIGN_LOG_LEVEL", "")
		t.Setenv("OODESIGN_INTEGRAND", "")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, &Config{}, cfg)
	})
}
