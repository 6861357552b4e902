package logger

import (
	"io"
	"os"
	"strings"

	"github.com/samvad-hq/reqclient/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with the object-style helpers the http client logs through.
// It also satisfies resty's Errorf/Warnf/Debugf logger surface.
type Logger struct {
	z *zap.Logger
	s *zap.SugaredLogger
}

// ParseLevel maps a config level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init builds a JSON logger writing to stdout at the level from cfg.
func Init(cfg *config.Config) (*Logger, error) {
	level := "info"
	if cfg != nil {
		level = cfg.LogLevel
	}
	return New(level, os.Stdout), nil
}

// New builds a JSON logger writing to w.
func New(level string, w io.Writer) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		ParseLevel(level),
	)

	return FromZap(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
}

// FromZap adapts an existing zap logger. A nil logger yields a no-op logger.
func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z, s: z.Sugar()}
}

// Zap exposes the underlying logger. A nil Logger yields a no-op zap logger.
func (l *Logger) Zap() *zap.Logger {
	if l == nil || l.z == nil {
		return zap.NewNop()
	}
	return l.z
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	if l == nil || l.z == nil {
		return nil
	}
	return l.z.Sync()
}

func (l *Logger) sugar() *zap.SugaredLogger {
	if l == nil || l.s == nil {
		return zap.NewNop().Sugar()
	}
	return l.s
}

// These log the given object as a single structured field named key.
func (l *Logger) InfoObj(msg, key string, obj interface{})  { l.Zap().Info(msg, zap.Any(key, obj)) }
func (l *Logger) DebugObj(msg, key string, obj interface{}) { l.Zap().Debug(msg, zap.Any(key, obj)) }
func (l *Logger) WarnObj(msg, key string, obj interface{})  { l.Zap().Warn(msg, zap.Any(key, obj)) }
func (l *Logger) ErrorObj(msg, key string, obj interface{}) { l.Zap().Error(msg, zap.Any(key, obj)) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.sugar().Errorf(format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.sugar().Warnf(format, v...) }
func (l *Logger) Debugf(format string, v ...interface{}) { l.sugar().Debugf(format, v...) }
