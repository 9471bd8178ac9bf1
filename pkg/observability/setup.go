package observability

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/listing-fixtures/pkg/config"
	"github.com/raywall/listing-fixtures/pkg/metrics"
)

// DefaultNamespace prefixa as métricas do coletor quando nada é configurado.
const DefaultNamespace = "listings."

// NoopProvider descarta tudo; usado quando o Datadog está desligado.
type NoopProvider struct{}

func (*NoopProvider) Count(string, float64, []string) error     { return nil }
func (*NoopProvider) Gauge(string, float64, []string) error     { return nil }
func (*NoopProvider) Histogram(string, float64, []string) error { return nil }

// StatsdProvider envia as métricas do coletor para um agente DogStatsD.
type StatsdProvider struct {
	client statsd.ClientInterface
}

// NewStatsdProvider embrulha um cliente já criado (útil com statsd.NoOpClient).
func NewStatsdProvider(client statsd.ClientInterface) (*StatsdProvider, error) {
	if client == nil {
		return nil, errors.New("cliente statsd ausente")
	}
	return &StatsdProvider{client: client}, nil
}

// Count arredonda o valor: contadores do coletor são sempre inteiros.
func (p *StatsdProvider) Count(name string, value float64, tags []string) error {
	return p.client.Count(name, int64(math.Round(value)), tags, 1)
}

func (p *StatsdProvider) Gauge(name string, value float64, tags []string) error {
	return p.client.Gauge(name, value, tags, 1)
}

func (p *StatsdProvider) Histogram(name string, value float64, tags []string) error {
	return p.client.Histogram(name, value, tags, 1)
}

// Close descarrega o buffer. Uma coleta avulsa termina antes do flush
// periódico do cliente, então o chamador precisa fechar o provider.
func (p *StatsdProvider) Close() error {
	return p.client.Close()
}

// SetupMetrics devolve o NoopProvider ou um StatsdProvider conforme a
// configuração.
func SetupMetrics(cfg config.MetricsConf) (metrics.Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	client, err := statsd.New(cfg.Datadog.Addr, statsd.WithNamespace(namespace(cfg.Datadog.Namespace)))
	if err != nil {
		return nil, fmt.Errorf("falha ao criar cliente statsd para %s: %w", cfg.Datadog.Addr, err)
	}
	return NewStatsdProvider(client)
}

// namespace garante o ponto final que separa o prefixo do nome da métrica.
func namespace(ns string) string {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return DefaultNamespace
	}
	if !strings.HasSuffix(ns, ".") {
		ns += "."
	}
	return ns
}
