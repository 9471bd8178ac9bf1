package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/raywall/listing-fixtures/pkg/config"
	"github.com/raywall/listing-fixtures/pkg/logger"
	emucfg "github.com/raywall/listing-fixtures/tools/emulator/config"
	"github.com/raywall/listing-fixtures/tools/emulator/fixtures"
	"github.com/raywall/listing-fixtures/tools/emulator/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Injetável para testes
var serverStarter = func(ctx context.Context, s emucfg.ServerConfig, tree types.Tree, log zerolog.Logger) error {
	return s.Start(ctx, tree, log)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile   string
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:          "emulator",
		Short:        "Sobe servidores HTTP que imitam listagens de Apache, Nginx, IIS e Caddy",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Configure(config.LoggingConf{Enabled: true, Level: logLevel, Format: logFormat}, "emulator")

			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, fixtures.Default(), log)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "arquivo JSON/YAML com as personas (padrão: $EMULATOR_CONFIG_PATH ou emulator.json)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "nível de log (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "formato do log (json, console)")

	return cmd
}

// loadConfig usa o arquivo informado; sem ele cai no Load com fallback.
func loadConfig(path string) (emucfg.Config, error) {
	if path == "" {
		return emucfg.Load(), nil
	}
	var cfg emucfg.Config
	if err := cfg.LoadFromFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run contém a lógica de orquestração: uma goroutine por persona. A falha
// de uma persona (porta ocupada, por exemplo) não derruba as demais.
func run(ctx context.Context, cfg emucfg.Config, tree types.Tree, log zerolog.Logger) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, server := range cfg {
		wg.Add(1)
		go func(s emucfg.ServerConfig) {
			defer wg.Done()
			if err := serverStarter(ctx, s, tree, log); err != nil {
				log.Error().Err(err).Str("persona", s.Persona).Msg("Persona indisponível")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(server)
	}

	wg.Wait()
	return errors.Join(errs...)
}
