package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por Prometheus ou Logging sem alterar a lógica de coleta.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Nomes das métricas emitidas pelo coletor.
const (
	FetchTotal     = "collector.fetch"
	ServerSkipped  = "collector.server.skipped"
	DirectoryCount = "collector.directories"
	RunDurationMS  = "collector.duration_ms"
	OutcomeSuccess = "success"
	OutcomeFailure = "error"
	TagServer      = "server"
	TagOutcome     = "outcome"
	TagTarget      = "target"
)

// Tag monta uma tag no formato chave:valor.
func Tag(key, value string) string {
	return key + ":" + value
}
