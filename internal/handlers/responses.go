package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fleet-admin/internal/errors"
	"fleet-admin/internal/export"
	"fleet-admin/internal/pagination"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for 4xx outcomes and SendSystemError for
// anything the client cannot act on. Internal error text never reaches the response body.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// PaginatedResponse is the listing envelope: {statusCode, data, meta}
type PaginatedResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Meta       PageMeta    `json:"meta"`
}

// PageMeta is pagination.Meta plus endpoint specific fields flattened next to it
type PageMeta struct {
	pagination.Meta
	Extra map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Extra into the meta object. The pagination fields always win.
func (m PageMeta) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	out["total"] = m.Total
	out["page"] = m.Page
	out["perPage"] = m.PerPage
	out["totalPages"] = m.TotalPages
	return json.Marshal(out)
}

// SuccessResponse is the single-item envelope: {statusCode, data, message}
type SuccessResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// NewPaginatedResponse builds a 200 listing envelope
func NewPaginatedResponse(data interface{}, meta pagination.Meta, extra map[string]interface{}) PaginatedResponse {
	return PaginatedResponse{
		StatusCode: http.StatusOK,
		Data:       data,
		Meta:       PageMeta{Meta: meta, Extra: extra},
	}
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendPaginated writes a listing page
func SendPaginated(c echo.Context, data interface{}, meta pagination.Meta, extra map[string]interface{}) error {
	return c.JSON(http.StatusOK, NewPaginatedResponse(data, meta, extra))
}

// SendSuccess writes a single item with the given status
func SendSuccess(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, SuccessResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDownload streams an export artifact and releases its workbook
func SendDownload(c echo.Context, artifact *export.Artifact) error {
	defer func() {
		if err := artifact.Workbook.Close(); err != nil {
			slog.WarnContext(c.Request().Context(), "failed to close workbook",
				"trace_id", getTraceID(c),
				"filename", artifact.Filename,
				"error", err,
			)
		}
	}()
	return export.StreamToResponse(c.Response(), artifact.Workbook, artifact.Filename)
}
