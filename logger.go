package main

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger     *zap.SugaredLogger
	noopLogger = zap.NewNop().Sugar()
)

// L returns the game logger, or a no-op logger before initLogger runs.
func L() *zap.SugaredLogger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// initLogger sends logs to a rotated file so they never touch the terminal
// the board is drawn on. HANOI_ENV=dev switches to the console encoder and
// LOG_LEVEL picks the level.
func initLogger(appName string) {
	mode := detectMode()
	logPath := selectLogPath(appName, mode)

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, zap.NewAtomicLevelAt(detectLogLevel()))
	logger = zap.New(core, zap.AddCaller()).Sugar()

	logger.Infof("logger initialized in %s mode, writing to %s", mode, logPath)
}

func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func detectMode() string {
	switch strings.ToLower(os.Getenv("HANOI_ENV")) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

func selectLogPath(appName, mode string) string {
	fileName := "hanoi.log"
	if mode == "dev" {
		fileName = "hanoi-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

func detectLogLevel() zapcore.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if detectMode() == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
