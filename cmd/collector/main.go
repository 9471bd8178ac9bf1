package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/raywall/listing-fixtures/pkg/collector"
	"github.com/raywall/listing-fixtures/pkg/config"
	"github.com/raywall/listing-fixtures/pkg/crawl"
	"github.com/raywall/listing-fixtures/pkg/logger"
	"github.com/raywall/listing-fixtures/pkg/metrics"
	"github.com/raywall/listing-fixtures/pkg/observability"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()
	defaults := config.DefaultCollectorConf()

	cmd := &cobra.Command{
		Use:   "collector",
		Short: "Coleta as listagens HTML de servidores locais para uso como fixtures",
		Long: `collector percorre a árvore de diretórios informada e, para cada servidor
acessível (caddy, nginx, apache, iis), grava <saída>/<servidor>/<dir>/listing.html
ou listing.error.txt quando o diretório falha.

Portas dos servidores reais podem ser trocadas com FOLDERAPI_PORT_<NOME>.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "arquivo YAML com as opções do coletor")
	flags.String("root", defaults.Root, "diretório raiz a ser enumerado")
	flags.StringP("output", "o", defaults.Output, "diretório de saída das listagens")
	flags.String("target", defaults.Target, "servidores alvo: real (8080-8083) ou mock (emulador 8101-8104)")
	flags.Duration("timeout", defaults.Timeout, "timeout de cada requisição")
	flags.Int("concurrency", defaults.Concurrency, "requisições simultâneas por servidor")
	flags.String("schedule", "", "expressão cron para repetir a coleta (ex: \"@hourly\")")
	flags.StringSlice("exclude", nil, "nomes de diretório adicionais a ignorar")
	flags.String("log-level", defaults.Logging.Level, "nível de log (debug, info, warn, error)")
	flags.String("log-format", defaults.Logging.Format, "formato do log (json, console)")

	for key, flag := range map[string]string{
		"root":           "root",
		"output":         "output",
		"target":         "target",
		"timeout":        "timeout",
		"concurrency":    "concurrency",
		"schedule":       "schedule",
		"exclude":        "exclude",
		"logging.level":  "log-level",
		"logging.format": "log-format",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("metrics.datadog.enabled", false)
	v.SetDefault("metrics.datadog.addr", "")
	v.SetDefault("metrics.datadog.namespace", observability.DefaultNamespace)

	v.SetEnvPrefix("LISTINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return cmd
}

// Injetável para testes
var execute = runCollector

// runCollector configura log e métricas e executa uma vez ou no agendamento.
func runCollector(ctx context.Context, cfg config.CollectorConf) error {
	log := logger.Configure(cfg.Logging, "collector")

	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	j := &job{cfg: cfg, fs: afero.NewOsFs(), metrics: provider, log: log}
	if cfg.Schedule == "" {
		return j.run(ctx)
	}
	return schedule(ctx, cfg.Schedule, j, log)
}

// loadConfig combina arquivo, ambiente e flags e valida o resultado.
func loadConfig(v *viper.Viper, cfgFile string) (config.CollectorConf, error) {
	var cfg config.CollectorConf

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("erro ao ler configuração '%s': %w", cfgFile, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	if err := config.NewValidator().Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// job é uma execução completa: enumerar e coletar.
type job struct {
	cfg     config.CollectorConf
	fs      afero.Fs
	metrics metrics.Provider
	log     zerolog.Logger
}

func (j *job) run(ctx context.Context) error {
	start := time.Now()

	dirs, err := crawl.New(j.fs, j.exclusions(), j.log).Enumerate(j.cfg.Root)
	if err != nil {
		return err
	}
	j.log.Info().Int("directories", len(dirs)).Str("root", j.cfg.Root).Msg("diretórios enumerados")

	c := collector.New(collector.Options{
		Output:      j.cfg.Output,
		Fs:          j.fs,
		Timeout:     j.cfg.Timeout,
		Concurrency: j.cfg.Concurrency,
		Logger:      j.log,
		Metrics:     j.metrics,
		Tags:        []string{metrics.Tag(metrics.TagTarget, j.cfg.Target)},
	})

	summary, err := c.Collect(ctx, j.servers(), dirs)
	if err != nil {
		return fmt.Errorf("coleta interrompida: %w", err)
	}

	j.log.Info().
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Int("servers", len(summary.Servers)).
		Msg("coleta concluída")
	return nil
}

func (j *job) exclusions() []string {
	names := append([]string{}, crawl.DefaultExclusions...)
	names = append(names, j.cfg.Exclude...)
	return append(names, filepath.Base(j.cfg.Output))
}

func (j *job) servers() []collector.Server {
	if j.cfg.Target == "mock" {
		return collector.MockServers()
	}
	ports, err := collector.ResolvePorts()
	if err != nil {
		j.log.Warn().Err(err).Msg("usando portas padrão")
	}
	return ports.Servers()
}

// schedule executa uma coleta imediata e depois a cada disparo do cron,
// até o contexto ser cancelado. Disparos sobrepostos são descartados.
func schedule(ctx context.Context, spec string, j *job, log zerolog.Logger) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&log))))

	_, err := c.AddFunc(spec, func() {
		if err := j.run(ctx); err != nil {
			log.Error().Err(err).Msg("coleta agendada falhou")
		}
	})
	if err != nil {
		return fmt.Errorf("agendamento inválido '%s': %w", spec, err)
	}

	if err := j.run(ctx); err != nil {
		log.Error().Err(err).Msg("coleta inicial falhou")
	}

	c.Start()
	log.Info().Str("schedule", spec).Msg("coletor agendado, aguardando sinal de parada")

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
