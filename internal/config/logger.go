package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging levels accepted in the configuration.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Prepare builds the console logger: info and debug go to stdout, errors to
// stderr.
func (c LoggingConfig) Prepare() (*zap.Logger, error) {
	var low zapcore.Level
	switch c.Level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelNormal, "":
		low = zapcore.InfoLevel
	case LevelDebug:
		low = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown logging level: %s", c.Level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	stdout := zapcore.NewCore(enc, zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return low <= lvl && lvl < zapcore.ErrorLevel
		}))
	stderr := zapcore.NewCore(enc, zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		}))

	return zap.New(zapcore.NewTee(stdout, stderr)).Named("mdsite"), nil
}
