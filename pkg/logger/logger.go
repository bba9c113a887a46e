package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init builds the global logger. Levels follow zap's names (debug, info,
// warn, error); unknown values fall back to info.
func Init(level string, development bool) error {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	log = built.Sugar()
	return nil
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	return log
}

// Op returns a logger scoped to one operation name.
func Op(op string) *zap.SugaredLogger {
	return log.With("op", op)
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	_ = log.Sync()
}
