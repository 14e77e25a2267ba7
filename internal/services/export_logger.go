package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-admin/internal/models"
)

// ExportLogger provides structured logging for exports and scope resolution
type ExportLogger struct {
	logger *slog.Logger
}

// NewExportLogger creates a new export logger
func NewExportLogger(logger *slog.Logger) ExportLoggerInterface {
	return &ExportLogger{
		logger: logger,
	}
}

// LogExportGenerated logs a workbook handed to the caller
func (el *ExportLogger) LogExportGenerated(ctx context.Context, entity, filename string, rows int, durationMs int64) {
	el.logger.InfoContext(ctx, "export generated",
		slog.String("event_type", "export_generated"),
		slog.String("entity", entity),
		slog.String("filename", filename),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogExportFailed logs an export that could not be produced
func (el *ExportLogger) LogExportFailed(ctx context.Context, entity string, errorMsg string) {
	el.logger.WarnContext(ctx, "export failed",
		slog.String("event_type", "export_failed"),
		slog.String("entity", entity),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogScopeMembershipMiss logs a request whose scope matched none of the user's accounts.
// The caller gets an empty page, so this is the only trace of the miss.
func (el *ExportLogger) LogScopeMembershipMiss(ctx context.Context, userID int64, requested string) {
	el.logger.InfoContext(ctx, "scope membership miss",
		slog.String("event_type", "scope_membership_miss"),
		slog.Int64("user_id", userID),
		slog.String("requested", requested),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(models.RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
