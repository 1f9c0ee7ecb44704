package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"tasktrack/config"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/usecase"
)

const bearerPrefix = "Bearer "

// Guard rejection reasons, used as metric labels.
const (
	rejectMissing = "missing"
	rejectInvalid = "invalid"
)

// guard implements usecase.Authorizer. It is a pure function of the token
// sources and the token service; it never touches the request.
type guard struct {
	tokenService    service.TokenService
	allowQueryToken bool
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// GuardParams holds dependencies for the authorization guard, injected by Fx.
type GuardParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewGuard is the constructor for the authorization guard.
func NewGuard(params GuardParams) usecase.Authorizer {
	allowQuery := false
	if params.Config != nil && params.Config.Auth != nil {
		allowQuery = params.Config.Auth.AllowQueryToken && !params.Config.IsProduction()
	}

	return &guard{
		tokenService:    params.TokenService,
		allowQueryToken: allowQuery,
		metrics:         metricsOrNop(params.Metrics),
		logger:          params.Logger,
	}
}

// Token sources, in discovery order.
const (
	sourceSession = "session"
	sourceHeader  = "header"
	sourceQuery   = "query"
)

// Authorize discovers a token (session, then bearer header, then query when
// enabled; first match wins) and verifies it.
func (g *guard) Authorize(ctx context.Context, sources usecase.TokenSources) (entity.Identity, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)

	token, source := g.discover(sources)
	if token == "" {
		g.metrics.RecordGuardRejection(rejectMissing)
		logger.Warn("No authentication token found")

		return entity.Identity{}, domainerrors.ErrNoAuthToken
	}
	logger.Debug("Session token discovered", slog.String("source", source))

	claims, err := g.tokenService.ValidateToken(token)
	if err != nil {
		g.metrics.RecordGuardRejection(rejectInvalid)
		logger.Warn("Rejected session token", slog.String("source", source), slog.Any("error", err))

		return entity.Identity{}, domainerrors.ErrInvalidAuthToken
	}

	return entity.Identity{UserID: claims.UserID}, nil
}

// discover returns the first non-empty token and where it came from.
func (g *guard) discover(sources usecase.TokenSources) (token, source string) {
	if sources.Session != "" {
		return sources.Session, sourceSession
	}
	if token := bearerToken(sources.AuthorizationHeader); token != "" {
		return token, sourceHeader
	}
	if g.allowQueryToken {
		if token := strings.TrimSpace(sources.Query); token != "" {
			return token, sourceQuery
		}
	}

	return "", ""
}

// bearerToken extracts the credential from an Authorization header. An
// empty credential after the scheme counts as no token.
func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
