package log

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela aplicação. Campos são acumulados
// por valor, então cada With* devolve um logger novo.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controla a saída do logger global
type Options struct {
	Level  string
	Format string
	// Env em "development" (ou vazio) ativa o modo compacto, que descarta campos de
	// rastreio pouco úteis no terminal
	Env string
}

type entryLogger struct {
	entry   *logrus.Entry
	compact bool
}

var L Logger = newEntryLogger(logrus.StandardLogger(), false)

func newEntryLogger(base *logrus.Logger, compact bool) *entryLogger {
	return &entryLogger{entry: logrus.NewEntry(base), compact: compact}
}

// Setup aplica Options ao logrus global. Nível inválido cai para info com um aviso.
func Setup(opts Options) {
	base := logrus.StandardLogger()

	if strings.EqualFold(opts.Format, FormatJSON) {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		base.WithField("level", opts.Level).Warn("invalid log level, falling back to info")
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	L = newEntryLogger(base, isDevelopmentEnv(opts.Env))
}

// SetupTestLogger liga o nível debug com saída de texto sem cores
func SetupTestLogger() {
	base := logrus.StandardLogger()
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true, PadLevelText: true})
	base.SetLevel(logrus.DebugLevel)
	base.SetReportCaller(false)

	L = newEntryLogger(base, false)
}

// SetOutput redireciona o logger global, usado pelos testes que inspecionam a saída
func SetOutput(w io.Writer) {
	logrus.StandardLogger().SetOutput(w)
}

func isDevelopmentEnv(env string) bool {
	switch strings.ToLower(env) {
	case "", "development", "dev", "local":
		return true
	}
	return false
}

// isRelevantField lista o que sobrevive no modo compacto
func isRelevantField(key string) bool {
	switch key {
	case correlationIDField, "method", "path", "status_code", "duration_ms", "error",
		"platform", "job", "report_type":
		return true
	}
	return strings.HasPrefix(key, "creator_") || strings.HasPrefix(key, "connection_")
}

func (l *entryLogger) derive(entry *logrus.Entry) Logger {
	return &entryLogger{entry: entry, compact: l.compact}
}

func (l *entryLogger) WithField(key string, value any) Logger {
	if l.compact && !isRelevantField(key) {
		return l
	}
	return l.derive(l.entry.WithField(key, value))
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if l.compact && !isRelevantField(k) {
			continue
		}
		kept[k] = v
	}
	if len(kept) == 0 {
		return l
	}
	return l.derive(l.entry.WithFields(kept))
}

func (l *entryLogger) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

func (l *entryLogger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func (l *entryLogger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *entryLogger) Info(args ...any)  { l.entry.Info(args...) }
func (l *entryLogger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *entryLogger) Error(args ...any) { l.entry.Error(args...) }
