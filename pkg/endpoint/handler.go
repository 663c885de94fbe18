package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/blogbuster/pkg/portal"
)

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.Tracer(portal.TracerName).Start(r.Context(), r.Method+" "+r.Pattern)
		defer span.End()

		r = r.WithContext(ctx)

		err := fn(w, r)
		if err == nil {
			return
		}

		span.SetAttributes(attribute.Int("http.status_code", err.Status))
		span.SetStatus(codes.Error, err.Message)

		slog.Error("API Error", "message", err.Message, "status", err.Status, "request_id", portal.RequestID(r))

		captureApiError(r, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(err.Status)

		resp := ErrorResponse{
			Error:  err.Message,
			Status: err.Status,
			Data:   err.Data,
		}

		if result := json.NewEncoder(w).Encode(resp); result != nil {
			slog.Error("Could not encode error response", "error", result)
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			NewScopeApiError(scope, r, apiErr).Enrich()

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

// getSentryLevel keeps expected reader-facing failures (missing pages, rate
// limits) out of the error stream.
func getSentryLevel(status int) sentry.Level {
	switch {
	case status == http.StatusNotFound, status == http.StatusTooManyRequests:
		return sentry.LevelInfo
	case status >= 400 && status < 500:
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}
