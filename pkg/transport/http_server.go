package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID  = "x-request-id"
	ContextKeyReqID  = contextKey("request_id")
	FieldRequestID   = "request_id"
	FieldLatencyMS   = "latency_ms"
	FieldStatus      = "status"
	FieldMethod      = "method"
	FieldPath        = "path"
	msgRequestServed = "request completed"
)

type contextKey string

// RequestID devolve o identificador associado à requisição, se houver.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyReqID).(string)
	return id
}

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// ObservabilityMiddleware registra cada requisição no logger e recupera
// panics do handler com 500. Não adiciona headers na resposta: os headers
// fazem parte da impressão digital da persona.
func ObservabilityMiddleware(next http.Handler, base zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		logger := base.With().Str(FieldRequestID, reqID).Logger()
		ctx := logger.WithContext(r.Context())
		ctx = context.WithValue(ctx, ContextKeyReqID, reqID)

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().Interface("panic", rec).Str(FieldPath, r.URL.Path).Msg("panic no handler")
				if !wrapper.wroteHeader {
					http.Error(wrapper, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}

			logger.Info().
				Str(FieldMethod, r.Method).
				Str(FieldPath, r.URL.Path).
				Int(FieldStatus, wrapper.statusCode).
				Int64(FieldLatencyMS, time.Since(start).Milliseconds()).
				Msg(msgRequestServed)
		}()

		next.ServeHTTP(wrapper, r.WithContext(ctx))
	})
}
