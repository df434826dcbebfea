package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (lvl LogLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
	}
	return zapcore.DebugLevel
}

func (lvl LogLevel) String() string {
	return string(lvl)
}

type LogEncoderType uint8

const (
	JSON LogEncoderType = iota
	PlainText
)

var encoderMap = map[LogEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

func getEncoderByType(typ LogEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	enc, ok := encoderMap[typ]
	if !ok {
		return zapcore.NewJSONEncoder
	}
	return enc
}

type XLogger interface {
	Sync() error

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
}

type xLogger struct {
	logger *zap.Logger
}

func (l *xLogger) Sync() error { return l.logger.Sync() }

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.logger.Error(msg, fields...)
}

type XLoggerOpt func(*loggerCfg)

type loggerCfg struct {
	component string
	lvl       LogLevel
	encoder   LogEncoderType
	ws        zapcore.WriteSyncer
}

func WithXLoggerComponent(name string) XLoggerOpt {
	return func(cfg *loggerCfg) {
		cfg.component = name
	}
}

func WithXLoggerLevel(lvl LogLevel) XLoggerOpt {
	return func(cfg *loggerCfg) {
		cfg.lvl = lvl
	}
}

func WithXLoggerEncoder(typ LogEncoderType) XLoggerOpt {
	return func(cfg *loggerCfg) {
		cfg.encoder = typ
	}
}

func WithXLoggerWriteSyncer(ws zapcore.WriteSyncer) XLoggerOpt {
	return func(cfg *loggerCfg) {
		cfg.ws = ws
	}
}

// NewXLogger builds a console logger. The zero configuration logs
// JSON-encoded DEBUG and above to stdout.
func NewXLogger(opts ...XLoggerOpt) XLogger {
	cfg := &loggerCfg{
		lvl:     LogLevelDebug,
		encoder: JSON,
		ws:      zapcore.Lock(os.Stdout),
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "lvl",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		TimeKey:      "ts",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		CallerKey:    "callAt",
		EncodeCaller: zapcore.ShortCallerEncoder,
		NameKey:      "component",
		EncodeName:   zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(getEncoderByType(cfg.encoder)(encCfg), cfg.ws, cfg.lvl.zapLevel())
	l := zap.New(core, zap.AddCaller())
	if cfg.component != "" {
		l = l.Named(cfg.component)
	}
	return &xLogger{logger: l}
}
