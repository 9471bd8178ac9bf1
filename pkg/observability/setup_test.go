package observability

import (
	"io"
	"testing"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/listing-fixtures/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("Disabled returns Noop", func(t *testing.T) {
		provider, err := SetupMetrics(config.MetricsConf{})
		require.NoError(t, err)

		_, ok := provider.(*NoopProvider)
		assert.True(t, ok, "esperado NoopProvider, recebido %T", provider)
		assert.NoError(t, provider.Count("x", 1, nil))
	})

	t.Run("Enabled returns closable statsd provider", func(t *testing.T) {
		cfg := config.MetricsConf{
			Datadog: config.DatadogConf{Enabled: true, Addr: "localhost:8125"},
		}

		// statsd.New sobre UDP não exige um agente ativo
		provider, err := SetupMetrics(cfg)
		require.NoError(t, err)

		_, ok := provider.(*StatsdProvider)
		assert.True(t, ok, "esperado StatsdProvider, recebido %T", provider)

		closer, ok := provider.(io.Closer)
		require.True(t, ok)
		assert.NoError(t, closer.Close())
	})
}

func TestNewStatsdProvider(t *testing.T) {
	_, err := NewStatsdProvider(nil)
	assert.Error(t, err)

	p, err := NewStatsdProvider(&statsd.NoOpClient{})
	require.NoError(t, err)
	assert.NoError(t, p.Count("collector.fetch", 1.4, []string{"server:nginx"}))
	assert.NoError(t, p.Gauge("collector.directories", 3, nil))
	assert.NoError(t, p.Histogram("collector.duration_ms", 12, nil))
	assert.NoError(t, p.Close())
}

func TestNamespace(t *testing.T) {
	tests := map[string]string{
		"":          DefaultNamespace,
		"  ":        DefaultNamespace,
		"fixtures":  "fixtures.",
		"fixtures.": "fixtures.",
	}
	for in, want := range tests {
		assert.Equal(t, want, namespace(in), in)
	}
}
