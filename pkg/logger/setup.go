package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/listing-fixtures/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger global baseando-se na configuração.
// A saída vai para stderr; component identifica o binário (emulator, collector).
func Configure(cfg config.LoggingConf, component string) zerolog.Logger {
	return ConfigureWriter(cfg, component, os.Stderr)
}

// ConfigureWriter é o Configure com destino explícito.
func ConfigureWriter(cfg config.LoggingConf, component string, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON por padrão, Console "bonito" para uso local se solicitado
	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("component", component).
		Logger()

	return logger
}
