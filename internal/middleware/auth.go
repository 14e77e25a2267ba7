package middleware

import (
	"context"
	goerrors "errors"
	"log/slog"

	"fleet-admin/internal/errors"
	"fleet-admin/internal/handlers"
	"fleet-admin/internal/models"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AssignmentLoader loads the account ids assigned to a user
type AssignmentLoader interface {
	AssignedAccountIDs(ctx context.Context, userID int64) ([]int64, error)
}

// RequireAuth creates a middleware that requires a valid access token and resolves the
// caller's account assignment
func RequireAuth(tokenService services.TokenServiceInterface, assignments AssignmentLoader, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "missing_token"})
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "invalid_token"})
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if goerrors.Is(err, services.ErrExpiredToken) {
					metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "expired_token"})
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "invalid_token"})
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			assigned, err := assignments.AssignedAccountIDs(c.Request().Context(), claims.UserID)
			if err != nil {
				slog.ErrorContext(c.Request().Context(), "failed to load account assignment",
					"trace_id", GetTraceID(c),
					"user_id", claims.UserID,
					"error", err,
				)
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.CallerContextKey, models.Caller{
				UserID:             claims.UserID,
				CustomerID:         claims.CustomerID,
				AssignedAccountIDs: assigned,
			})
			c.Set("user_email", claims.Email)

			metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "authenticated"})
			return next(c)
		}
	}
}
