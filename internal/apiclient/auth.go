package apiclient

import (
	"context"
	"net/http"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

// TokenSink persists the bearer token handed out by the auth endpoints.
type TokenSink interface {
	Login(ctx context.Context, token string) error
}

// Auth calls the /auth endpoints and stores issued tokens in the session.
type Auth struct {
	client  *Client
	session TokenSink
}

func NewAuth(client *Client, session TokenSink) *Auth {
	return &Auth{client: client, session: session}
}

func (a *Auth) Login(ctx context.Context, email, password string) (domain.AuthResponse, error) {
	return a.tokenCall(ctx, "/auth/login", domain.LoginRequest{Email: email, Password: password})
}

func (a *Auth) Register(ctx context.Context, name, email, password string) (domain.AuthResponse, error) {
	return a.tokenCall(ctx, "/auth/register", domain.RegisterRequest{Name: name, Email: email, Password: password})
}

// ForgotPassword asks the server to issue a reset token for email.
func (a *Auth) ForgotPassword(ctx context.Context, email string) (domain.MessageResponse, error) {
	var out domain.MessageResponse
	err := a.client.Do(ctx, http.MethodPost, "/auth/forgot-password", domain.ForgotPasswordRequest{Email: email}, &out)
	return out, err
}

func (a *Auth) ResetPassword(ctx context.Context, token, password string) (domain.AuthResponse, error) {
	return a.tokenCall(ctx, "/auth/reset-password", domain.ResetPasswordRequest{Token: token, Password: password})
}

func (a *Auth) tokenCall(ctx context.Context, path string, in any) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := a.client.Do(ctx, http.MethodPost, path, in, &out); err != nil {
		return out, err
	}
	if out.Token != "" && a.session != nil {
		if err := a.session.Login(ctx, out.Token); err != nil {
			return out, err
		}
	}
	return out, nil
}
