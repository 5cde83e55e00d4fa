// Package logger provides structured logging using Zap.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// LevelEnv overrides the minimum level of the environment's preset.
const LevelEnv = "LOG_LEVEL"

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment. Only the
// first call has an effect.
//
//   - "production": JSON, info and above
//   - "test": discarded
//   - anything else: console, debug and above
func Init(env string) {
	once.Do(func() {
		sugar = build(env, os.Getenv(LevelEnv)).Sugar()
	})
}

// build creates the logger for env. An unparseable level keeps the preset.
func build(env, level string) *zap.Logger {
	var cfg zap.Config
	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
	case "test":
		return zap.NewNop()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		if lvl, err := zap.ParseAtomicLevel(level); err == nil {
			cfg.Level = lvl
		}
	}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
