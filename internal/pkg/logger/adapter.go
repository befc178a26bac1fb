package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// BridgeSlog routes the standard slog logger through the zap core so that
// library code logging via slog ends up in the same JSON stream.
func BridgeSlog(zapLogger *zap.Logger) {
	handler := zapslog.NewHandler(zapLogger.Core())
	slog.SetDefault(slog.New(handler))
}
