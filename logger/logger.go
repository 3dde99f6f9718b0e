package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zlog *zap.Logger = zap.NewNop()

// Init builds the global logger. Development gets colored console output,
// production gets JSON.
func Init(environment string, level string) error {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if l, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(l)
	}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zlog = built
	return nil
}

// Get returns the underlying zap logger, for middleware that wants it directly.
func Get() *zap.Logger {
	return zlog
}

// Sync flushes buffered log entries.
func Sync() {
	_ = zlog.Sync()
}

func Success(message string) {
	zlog.Info(message)
}

func Info(message string) {
	zlog.Info(message)
}

func Infof(format string, args ...interface{}) {
	zlog.Info(fmt.Sprintf(format, args...))
}

func Warning(message string) {
	zlog.Warn(message)
}

func Debug(message string) {
	zlog.Debug(message)
}

func Error(message string, err error) {
	if err != nil {
		zlog.Error(message, zap.Error(err))
		return
	}
	zlog.Error(message)
}

func Fatal(message string) {
	zlog.Fatal(message)
	os.Exit(1)
}
