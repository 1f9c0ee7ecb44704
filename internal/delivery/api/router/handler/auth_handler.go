package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tasktrack/internal/delivery/api/response"
	"tasktrack/internal/delivery/api/session"
	deliverycontext "tasktrack/internal/delivery/context"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/usecase"
)

// AuthHandler serves signup, login, Google login and logout.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	oauth   service.OAuthService
	carrier *session.Carrier
	logger  *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	OAuth   service.OAuthService
	Carrier *session.Carrier
	Logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		oauth:   params.OAuth,
		carrier: params.Carrier,
		logger:  params.Logger,
	}
}

// Signup registers a local account and starts a session.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		Credential: credentialOf(req.Password, req.GoogleID),
	})
	if err != nil {
		return err
	}

	return h.respond(c, output)
}

// Login authenticates a local account and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:      req.Email,
		Credential: credentialOf(req.Password, req.GoogleID),
	})
	if err != nil {
		return err
	}

	return h.respond(c, output)
}

// GoogleRedirect sends the browser to the Google consent screen.
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	authURL, _, err := h.oauth.BuildAuthorizationURL()
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback finishes the consent flow started by GoogleRedirect.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if !h.oauth.ValidateState(c.QueryParam("state")) {
		return domainerrors.ErrOAuthStateInvalid
	}

	ctx := c.Request().Context()
	accessToken, err := h.oauth.ExchangeCode(ctx, c.QueryParam("code"))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Google code exchange failed", slog.Any("error", err))

		return domainerrors.NewAuthProviderError("exchange", err)
	}

	output, err := h.authUC.HandleExternalAuth(ctx, accessToken)
	if err != nil {
		return err
	}

	return h.respond(c, output)
}

// GoogleLogin signs in with an access token obtained by the client.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.HandleExternalAuth(c.Request().Context(), req.AccessToken)
	if err != nil {
		return err
	}

	return h.respond(c, output)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	output := h.authUC.Logout(c.Request().Context())
	if err := h.carrier.Apply(c, output.Session); err != nil {
		return err
	}

	return response.Success(c, output.Status, output.Message, nil)
}

func (h *AuthHandler) respond(c echo.Context, output *usecase.AuthOutput) error {
	if err := h.carrier.Apply(c, output.Session); err != nil {
		return err
	}

	return response.Success(c, output.Status, output.Message, authData{
		ID:    output.UserID.String(),
		Token: output.Token,
	})
}
