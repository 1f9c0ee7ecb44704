// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/fx"

	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
	"tasktrack/internal/usecase"
)

// timingPassword is hashed once and compared against on login branches that
// have no real hash, so they cost the same as a wrong password.
const timingPassword = "tasktrack-timing-equaliser"

// Provider failure stages, kept on AuthProviderError for logs.
const (
	stageVerify  = "verify"
	stageProfile = "profile"
	stageLookup  = "lookup"
	stageCreate  = "create"
	stageToken   = "token"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	metrics      service.MetricsRecorder
	logger       *slog.Logger

	timingOnce sync.Once
	timingHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		metrics:      metricsOrNop(params.Metrics),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a local account and opens a session for it.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (output *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.RecordAuthAttempt(service.FlowSignup, outcomeOf(err)) }()

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	// The duplicate check completes before any write is attempted.
	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	passwordHash, err := srv.hashForSignup(input.Credential)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Firstname:    strings.TrimSpace(input.Firstname),
		Lastname:     strings.TrimSpace(input.Lastname),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err = srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{
		Status:  http.StatusCreated,
		Message: "User created",
		UserID:  user.ID,
		Token:   token,
		Session: usecase.SetSession(token),
	}, nil
}

func (srv *authService) hashForSignup(credential entity.Credential) (string, error) {
	switch cred := credential.(type) {
	case entity.LocalCredential:
		if cred.Password == "" {
			return "", domainerrors.ErrPasswordRequired
		}
		hash, err := srv.hasher.Hash(cred.Password)
		if err != nil {
			return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		return hash, nil
	case entity.ExternalCredential:
		return "", domainerrors.ErrExternalSignupUnsupported
	default:
		return "", domainerrors.ErrPasswordRequired
	}
}

// Login authenticates a local account. Every failure looks the same to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (output *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.RecordAuthAttempt(service.FlowLogin, outcomeOf(err)) }()

	email := normalizeEmail(input.Email)
	password := ""
	if cred, ok := input.Credential.(entity.LocalCredential); ok {
		password = cred.Password
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if err != nil || !user.HasPassword() {
		srv.equaliseTiming(password)
		srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.String("reason", "no local credential"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	matched := srv.hasher.Check(password, user.PasswordHash)
	if password == "" || !matched {
		srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		Status:  http.StatusOK,
		Message: "Login successful",
		UserID:  user.ID,
		Token:   token,
		Session: usecase.SetSession(token),
	}, nil
}

// equaliseTiming burns one bcrypt comparison.
func (srv *authService) equaliseTiming(password string) {
	srv.timingOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err == nil {
			srv.timingHash = hash
		}
	})
	if srv.timingHash != "" {
		_ = srv.hasher.Check(password, srv.timingHash)
	}
}

// HandleExternalAuth signs in with a Google access token, creating the
// account on first use. All failures collapse into AuthProviderError.
func (srv *authService) HandleExternalAuth(ctx context.Context, accessToken string) (output *usecase.AuthOutput, err error) {
	defer func() {
		srv.metrics.RecordAuthAttempt(service.FlowGoogle, outcomeOf(err))
		if err != nil {
			srv.log(ctx).Error("Google login failed", slog.Any("error", err))
		}
	}()

	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.NewAuthProviderError(stageVerify, domainerrors.ErrProviderRejected)
	}

	profile, err := srv.verifier.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, domainerrors.NewAuthProviderError(stageProfile, err)
	}
	if !profile.EmailVerified {
		return nil, domainerrors.NewAuthProviderError(stageVerify, domainerrors.ErrEmailNotVerified)
	}

	email := normalizeEmail(profile.Email)
	created := false
	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Firstname: profile.GivenName,
			Lastname:  profile.FamilyName,
			Email:     email,
			GoogleID:  profile.Subject,
		}
		if err = srv.userRepo.Create(ctx, user); err != nil {
			return nil, domainerrors.NewAuthProviderError(stageCreate, err)
		}
		created = true
	case err != nil:
		return nil, domainerrors.NewAuthProviderError(stageLookup, err)
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, domainerrors.NewAuthProviderError(stageToken, err)
	}

	message := "Google login successful"
	if created {
		message = "Google signup successful"
	}
	srv.log(ctx).Info(message, slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{
		Status:  http.StatusOK,
		Message: message,
		UserID:  user.ID,
		Token:   token,
		Created: created,
		Session: usecase.SetSession(token),
	}, nil
}

// Logout always succeeds. Tokens are stateless, so only the carrier is cleared.
func (srv *authService) Logout(ctx context.Context) *usecase.AuthOutput {
	srv.log(ctx).Debug("Clearing session")

	return &usecase.AuthOutput{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
		Session: usecase.ClearSession(),
	}
}

func (srv *authService) issueToken(user *entity.User) (string, error) {
	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
