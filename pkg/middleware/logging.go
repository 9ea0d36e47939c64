package middleware

import (
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/creator-automation/pkg/apiErrors"
	"github.com/vfg2006/creator-automation/pkg/log"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	slowRequest         = 500 * time.Millisecond
	stackBufferSize     = 4096
)

// LoggingMiddleware abre um correlation id por requisição (ou reaproveita o do header)
// e registra método, rota, status e duração
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(CorrelationIDHeader); incoming != "" {
				ctx = log.ContextWithCorrelationID(ctx, incoming)
			}
			ctx, correlationID := log.WithCorrelationID(ctx)
			r = r.WithContext(ctx)

			w.Header().Set(CorrelationIDHeader, correlationID)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(started)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"status_code": rec.status,
				"bytes":       rec.written,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("api: request failed")
			case rec.status >= http.StatusBadRequest:
				logger.Warn("api: request rejected")
			case elapsed > slowRequest:
				logger.Warn("api: slow request")
			default:
				logger.Info("api: request finished")
			}
		})
	}
}

// statusRecorder guarda o status e o tamanho do corpo devolvidos pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.wroteHeader {
		return
	}
	s.status = code
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(http.StatusOK)
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// LogPanicMiddleware converte um pânico no handler em 500 com o stack no log
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					stack := make([]byte, stackBufferSize)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": recovered,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("api: panic while handling request")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
