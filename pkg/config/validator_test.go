package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Defaults(t *testing.T) {
	cfg := DefaultCollectorConf()
	require.NoError(t, NewValidator().Validate(&cfg))
}

func TestValidator_StructuralRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CollectorConf)
		rule   string
	}{
		{"target desconhecido", func(c *CollectorConf) { c.Target = "staging" }, "oneof"},
		{"timeout zero", func(c *CollectorConf) { c.Timeout = 0 }, "gt"},
		{"concorrência zero", func(c *CollectorConf) { c.Concurrency = 0 }, "min"},
		{"saída vazia", func(c *CollectorConf) { c.Output = "" }, "required"},
		{"nível de log inválido", func(c *CollectorConf) { c.Logging.Level = "trace" }, "oneof"},
		{"datadog sem endereço", func(c *CollectorConf) { c.Metrics.Datadog.Enabled = true }, "required_if"},
		{"exclusão vazia", func(c *CollectorConf) { c.Exclude = []string{""} }, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCollectorConf()
			tt.mutate(&cfg)

			err := NewValidator().Validate(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "'"+tt.rule+"'")
		})
	}
}

func TestValidator_SemanticRules(t *testing.T) {
	t.Run("cron inválido", func(t *testing.T) {
		cfg := DefaultCollectorConf()
		cfg.Schedule = "a cada hora"
		err := NewValidator().Validate(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agendamento inválido")
	})

	t.Run("cron válido", func(t *testing.T) {
		cfg := DefaultCollectorConf()
		cfg.Schedule = "*/15 * * * *"
		assert.NoError(t, NewValidator().Validate(&cfg))

		cfg.Schedule = "@hourly"
		assert.NoError(t, NewValidator().Validate(&cfg))
	})

	t.Run("exclusão com barra", func(t *testing.T) {
		cfg := DefaultCollectorConf()
		cfg.Exclude = []string{"a/b"}
		assert.Error(t, NewValidator().Validate(&cfg))
	})

	t.Run("saída igual à raiz", func(t *testing.T) {
		cfg := DefaultCollectorConf()
		cfg.Root = "."
		cfg.Output = "./"
		assert.Error(t, NewValidator().Validate(&cfg))
	})

	t.Run("datadog completo", func(t *testing.T) {
		cfg := DefaultCollectorConf()
		cfg.Timeout = 250 * time.Millisecond
		cfg.Metrics.Datadog = DatadogConf{Enabled: true, Addr: "localhost:8125"}
		assert.NoError(t, NewValidator().Validate(&cfg))
	})
}
