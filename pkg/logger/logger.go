// Package logger builds the structured zap logger shared by every phase
// of the scheduling pipeline and the CLI host.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"examsched/pkg/config"
)

// New builds a *zap.Logger from cfg. There is no environment split between
// development and production here (this is a CLI, not a long-running
// service); format and level are both caller-controlled.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()

	switch cfg.Format {
	case "json":
		zapCfg.Encoding = "json"
	default:
		zapCfg.Encoding = "console"
	}

	if cfg.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
