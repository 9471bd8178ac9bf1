package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/raywall/listing-fixtures/pkg/transport"
	"github.com/raywall/listing-fixtures/tools/emulator/types"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 2 * time.Second

// ServerConfig para cada persona/porta
type ServerConfig struct {
	Persona string `json:"persona" yaml:"persona" validate:"required,oneof=apache nginx iis caddy"`
	Host    string `json:"host" yaml:"host"`
	Port    int    `json:"port" yaml:"port" validate:"required,min=1,max=65535"`
}

// Addr devolve host:porta de escuta.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Start abre a porta configurada e atende até o contexto ser cancelado.
func (s *ServerConfig) Start(ctx context.Context, tree types.Tree, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("erro ao escutar em %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln, tree, logger)
}

// Serve atende a persona no listener recebido. Cada persona tem o seu
// próprio http.Server; falhas ficam restritas a ele.
func (s *ServerConfig) Serve(ctx context.Context, ln net.Listener, tree types.Tree, logger zerolog.Logger) error {
	handler, err := s.NewHandler(tree)
	if err != nil {
		ln.Close()
		return err
	}

	logger = logger.With().Str("persona", s.Persona).Logger()
	srv := &http.Server{
		Handler:           transport.ObservabilityMiddleware(handler, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info().Msgf("Persona %s ouvindo em http://%s/root/", s.Persona, ln.Addr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Encerramento forçado")
			srv.Close()
		}
		<-errCh
		logger.Info().Msg("Persona encerrada")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("erro no servidor %s (%s): %w", s.Persona, ln.Addr(), err)
	}
}
