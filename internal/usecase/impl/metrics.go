package impl

import (
	"time"

	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
)

// nopMetrics is used when no recorder is wired.
type nopMetrics struct{}

func (nopMetrics) RecordAuthAttempt(string, string) {}

func (nopMetrics) RecordGuardRejection(string) {}

func (nopMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}

func metricsOrNop(m service.MetricsRecorder) service.MetricsRecorder {
	if m == nil {
		return nopMetrics{}
	}

	return m
}

// outcomeOf classifies an auth result: client mistakes are rejections,
// everything else is an error.
func outcomeOf(err error) string {
	if err == nil {
		return service.OutcomeSuccess
	}
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok && appErr.HTTPCode() < 500 {
		return service.OutcomeRejected
	}

	return service.OutcomeError
}
