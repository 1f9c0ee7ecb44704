package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tasktrack/config"
	deliverycontext "tasktrack/internal/delivery/context"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware records every request in metrics and, in debug mode, logs it.
type LoggerMiddleware struct {
	logger  *slog.Logger
	debug   bool
	metrics service.MetricsRecorder
}

// NewLoggerMiddleware creates a new logger middleware. metrics may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, metrics service.MetricsRecorder) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		debug:   config.Env.Debug,
		metrics: metrics,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		if m.metrics != nil {
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))
		}
		if m.debug {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

// responseStatus predicts the status the error handler will write when the
// handler returned an error before committing the response.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	// The raw query may carry ?token=, so only its presence is logged.
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.Bool("has_query", true))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
