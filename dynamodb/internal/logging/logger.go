package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the CLI logger.
type Options struct {
	// Verbose enables debug output. DY_LOG_LEVEL=debug does the same.
	Verbose bool
	// File, if set, receives a copy of every log line with rotation.
	File string
	// Writer is where console logs go. Defaults to os.Stderr.
	Writer io.Writer
}

// New builds the dy logger: human-readable lines on Writer (JSON lines when
// DY_LOG_FORMAT=json) and, if File is set, JSON lines in a rotated file.
func New(opts Options) (*zap.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := zapcore.WarnLevel
	if opts.Verbose || os.Getenv("DY_LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(os.Getenv("DY_LOG_FORMAT")), zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level)),
	}
	if opts.File != "" {
		cores = append(cores, fileCore(opts.File))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func consoleEncoder(format string) zapcore.Encoder {
	cfg := encoderConfig()
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// fileCore records everything down to debug, whatever the console level.
func fileCore(path string) zapcore.Core {
	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotated), zapcore.DebugLevel)
}

// Badger adapts l to badger.Logger. Badger is chatty at info level, so its
// info and debug lines are both logged at debug.
func Badger(l *zap.Logger) *BadgerLogger {
	return &BadgerLogger{s: l.Named("badger").Sugar()}
}

type BadgerLogger struct {
	s *zap.SugaredLogger
}

func (b *BadgerLogger) Errorf(format string, args ...any)   { b.s.Errorf(format, args...) }
func (b *BadgerLogger) Warningf(format string, args ...any) { b.s.Warnf(format, args...) }
func (b *BadgerLogger) Infof(format string, args ...any)    { b.s.Debugf(format, args...) }
func (b *BadgerLogger) Debugf(format string, args ...any)   { b.s.Debugf(format, args...) }
