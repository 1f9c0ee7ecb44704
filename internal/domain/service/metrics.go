package service

import "time"

// Auth attempt flows.
const (
	FlowSignup = "signup"
	FlowLogin  = "login"
	FlowGoogle = "google"
)

// Auth attempt outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// MetricsRecorder counts security-relevant events. Implementations must be
// safe for concurrent use.
type MetricsRecorder interface {
	RecordAuthAttempt(flow, outcome string)
	RecordGuardRejection(reason string)
	RecordHTTPRequest(method, route string, status int, elapsed time.Duration)
}
