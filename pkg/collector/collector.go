package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/raywall/listing-fixtures/pkg/listing"
	"github.com/raywall/listing-fixtures/pkg/metrics"
	"github.com/raywall/listing-fixtures/pkg/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Nomes dos artefatos gravados por diretório.
const (
	ListingFile = "listing.html"
	ErrorFile   = "listing.error.txt"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "listing-fixtures-collector"
)

// Options configura um Collector. Campos vazios recebem padrões em New.
type Options struct {
	Output      string
	Fs          afero.Fs
	Timeout     time.Duration
	Concurrency int
	Logger      zerolog.Logger
	Metrics     metrics.Provider
	Tags        []string // anexadas a toda métrica (ex: target:mock)
	Client      *resty.Client
}

// Outcome é o resultado de um fetch, gravado imediatamente em disco.
type Outcome struct {
	Server  string
	Path    string
	Success bool
	Payload string
}

// ServerSummary resume a coleta de um servidor.
type ServerSummary struct {
	Name      string
	Reachable bool
	Succeeded int
	Failed    int
}

// Summary resume uma execução completa.
type Summary struct {
	Directories int
	Servers     []ServerSummary
	Elapsed     time.Duration
}

// Collector baixa as listagens de cada servidor e grava em disco.
type Collector struct {
	opts   Options
	client *resty.Client
	log    zerolog.Logger
}

// New cria um Collector aplicando os padrões.
func New(opts Options) *Collector {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Output == "" {
		opts.Output = "listings"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Metrics == nil {
		opts.Metrics = &observability.NoopProvider{}
	}

	client := opts.Client
	if client == nil {
		client = resty.New().SetHeader("User-Agent", defaultUserAgent)
	}

	return &Collector{opts: opts, client: client, log: opts.Logger}
}

// Collect visita cada servidor: primeiro uma sonda na raiz; se responder,
// busca cada diretório e grava exatamente um artefato por diretório.
// Falhas de rede ou de status viram listing.error.txt; apenas falhas de
// escrita (ou cancelamento do contexto) interrompem a execução.
func (c *Collector) Collect(ctx context.Context, servers []Server, dirs []string) (Summary, error) {
	start := time.Now()
	summary := Summary{Directories: len(dirs)}
	_ = c.opts.Metrics.Gauge(metrics.DirectoryCount, float64(len(dirs)), c.tags())

	defer func() {
		summary.Elapsed = time.Since(start)
		_ = c.opts.Metrics.Histogram(metrics.RunDurationMS, float64(summary.Elapsed.Milliseconds()), c.tags())
	}()

	for _, srv := range servers {
		log := c.log.With().Str("server", srv.Name).Str("base", srv.BaseURL()).Logger()
		log.Info().Msg("coletando servidor")

		ss := ServerSummary{Name: srv.Name}
		if ok, payload := c.fetch(ctx, srv.BaseURL()); !ok {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			log.Warn().Str("error", payload).Msg("servidor inacessível, ignorado")
			_ = c.opts.Metrics.Count(metrics.ServerSkipped, 1, c.tags(metrics.Tag(metrics.TagServer, srv.Name)))
			summary.Servers = append(summary.Servers, ss)
			continue
		}
		ss.Reachable = true

		err := c.collectServer(ctx, srv, dirs, &ss)
		summary.Servers = append(summary.Servers, ss)
		if err != nil {
			return summary, err
		}

		log.Info().Int("ok", ss.Succeeded).Int("failed", ss.Failed).Msg("servidor concluído")
	}

	return summary, nil
}

func (c *Collector) collectServer(ctx context.Context, srv Server, dirs []string, ss *ServerSummary) error {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for _, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ok, payload := c.fetch(gctx, srv.BaseURL()+EncodePath(dir))
			if !ok && gctx.Err() != nil {
				return gctx.Err()
			}
			out := Outcome{Server: srv.Name, Path: dir, Success: ok, Payload: payload}

			if err := c.write(out); err != nil {
				return err
			}

			c.record(out)
			mu.Lock()
			if ok {
				ss.Succeeded++
			} else {
				ss.Failed++
			}
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// fetch faz um GET com timeout. Em falha o payload é a descrição do erro.
func (c *Collector) fetch(ctx context.Context, url string) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return false, err.Error()
	}
	if !resp.IsSuccess() {
		return false, fmt.Sprintf("%s for url: %s", resp.Status(), url)
	}
	// Corpo bruto: resp.String() apara espaços nas bordas.
	return true, string(resp.Body())
}

// write grava o artefato do resultado e remove o do tipo oposto, se existir.
func (c *Collector) write(out Outcome) error {
	dir := filepath.Join(c.opts.Output, out.Server, filepath.FromSlash(out.Path))
	if err := c.opts.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("falha ao criar '%s': %w", dir, err)
	}

	name, stale := ListingFile, ErrorFile
	if !out.Success {
		name, stale = ErrorFile, ListingFile
	}

	target := filepath.Join(dir, name)
	if err := afero.WriteFile(c.opts.Fs, target, []byte(out.Payload), 0o644); err != nil {
		return fmt.Errorf("falha ao gravar '%s': %w", target, err)
	}

	if err := c.opts.Fs.Remove(filepath.Join(dir, stale)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("falha ao remover artefato antigo em '%s': %w", dir, err)
	}
	return nil
}

// tags junta as tags da métrica com as tags fixas do coletor.
func (c *Collector) tags(extra ...string) []string {
	if len(c.opts.Tags) == 0 {
		return extra
	}
	return append(extra, c.opts.Tags...)
}

func (c *Collector) record(out Outcome) {
	outcome := metrics.OutcomeSuccess
	if !out.Success {
		outcome = metrics.OutcomeFailure
	}
	_ = c.opts.Metrics.Count(metrics.FetchTotal, 1, c.tags(
		metrics.Tag(metrics.TagServer, out.Server),
		metrics.Tag(metrics.TagOutcome, outcome),
	))

	if !out.Success {
		c.log.Warn().Str("server", out.Server).Str("dir", out.Path).Str("error", out.Payload).Msg("falha ao coletar diretório")
		return
	}

	entries, err := listing.Entries(strings.NewReader(out.Payload))
	if err != nil {
		c.log.Debug().Err(err).Str("server", out.Server).Str("dir", out.Path).Msg("listagem gravada, html ilegível")
		return
	}
	c.log.Debug().Str("server", out.Server).Str("dir", out.Path).
		Int("entries", len(entries)).Msg("listagem gravada")
}
