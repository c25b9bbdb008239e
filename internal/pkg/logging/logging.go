// Package logging настраивает структурное логирование приложения.
package logging

import (
	"log/slog"
	"os"
)

// Setup создает текстовый slog-логгер с заданным уровнем и делает его
// логгером по умолчанию. Уровень задается строкой из конфигурации.
func Setup(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)
	return logger
}
