// Package logger provides the shared zap logger for the whole application.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// Init builds the process-wide logger. Safe to call more than once.
func Init() {
	if Log != nil {
		return
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var err error
	Log, err = config.Build()
	if err != nil {
		Log = zap.NewNop()
	}
}
