package handler

import (
	"strings"

	"tasktrack/internal/domain/entity"
)

type signupRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=6"`
	GoogleID  string `json:"googleId,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	GoogleID string `json:"googleId,omitempty"`
}

type googleLoginRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

// credentialOf picks the credential variant; a password wins over a google id.
func credentialOf(password, googleID string) entity.Credential {
	if password == "" && googleID != "" {
		return entity.ExternalCredential{ProviderID: googleID}
	}

	return entity.LocalCredential{Password: password}
}

type authData struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
}

type editTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
}

func (r *createTaskRequest) normalize() { r.Title = strings.TrimSpace(r.Title) }

func (r *editTaskRequest) normalize() { r.Title = strings.TrimSpace(r.Title) }

func (r *signupRequest) normalize() { r.Email = strings.TrimSpace(r.Email) }

func (r *loginRequest) normalize() { r.Email = strings.TrimSpace(r.Email) }

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CREATED INPROGRESS COMPLETED"`
}

type listTasksQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort" validate:"omitempty,oneof=latest oldest"`
}

type groupedTasksQuery struct {
	Search string `query:"search"`
}

type testCookieRequest struct {
	Token string `json:"token" validate:"required"`
}
