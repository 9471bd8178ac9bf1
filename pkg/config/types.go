package config

import "time"

// CollectorConf representa as opções de uma execução de coleta. É preenchida
// pelo viper (flags, variáveis LISTINGS_* e arquivo YAML opcional).
type CollectorConf struct {
	Root        string        `mapstructure:"root" yaml:"root" validate:"required"`
	Output      string        `mapstructure:"output" yaml:"output" validate:"required"`
	Target      string        `mapstructure:"target" yaml:"target" validate:"required,oneof=real mock"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency" validate:"min=1,max=64"`
	Schedule    string        `mapstructure:"schedule" yaml:"schedule"` // Ex: "@hourly", "*/15 * * * *"
	Exclude     []string      `mapstructure:"exclude" yaml:"exclude" validate:"dive,required"`
	Logging     LoggingConf   `mapstructure:"logging" yaml:"logging"`
	Metrics     MetricsConf   `mapstructure:"metrics" yaml:"metrics"`
}

type LoggingConf struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Level   string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `mapstructure:"datadog" yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `mapstructure:"addr" yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// DefaultCollectorConf devolve os valores usados quando nada é informado.
func DefaultCollectorConf() CollectorConf {
	return CollectorConf{
		Root:        ".",
		Output:      "listings",
		Target:      "real",
		Timeout:     5 * time.Second,
		Concurrency: 1,
		Logging:     LoggingConf{Enabled: true, Level: "info", Format: "console"},
	}
}
