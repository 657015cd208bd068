package logger

import (
	"os"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emresource/emresource/internal/pkg/models"
)

// ZapLogger wraps zap with optional New Relic log forwarding.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	nrApp *newrelic.Application
}

// NewZapLogger builds a logger from config. Console output always, file
// output when a path is configured, logs forwarded to New Relic when an
// application is provided.
func NewZapLogger(cfg models.LoggerConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	if cfg.FilePath != "" {
		file, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			level,
		))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{
			level: level,
			nrApp: nrApp,
		})
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return &ZapLogger{
		Logger: zl,
		sugar:  zl.Sugar(),
		nrApp:  nrApp,
	}, nil
}

// Close flushes buffered log entries.
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}

// newRelicCore forwards log entries to New Relic.
type newRelicCore struct {
	level zapcore.Level
	nrApp *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	attrs := encoder.Fields
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["caller"] = entry.Caller.TrimmedPath()

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attrs,
	})
	return nil
}

func (c *newRelicCore) Sync() error { return nil }
