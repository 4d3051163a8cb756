package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/backoffice/internal/auth"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/validate"
)

// Auth serves the public /auth endpoints.
type Auth struct {
	svc *auth.Service
	log logger.Logger
}

func NewAuth(svc *auth.Service, log logger.Logger) *Auth {
	return &Auth{svc: svc, log: log}
}

func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	serve(a, w, r, http.StatusOK, a.svc.Login)
}

func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	serve(a, w, r, http.StatusCreated, a.svc.Register)
}

func (a *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	serve(a, w, r, http.StatusOK, a.svc.ForgotPassword)
}

func (a *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	serve(a, w, r, http.StatusOK, a.svc.ResetPassword)
}

func serve[Req, Resp any](a *Auth, w http.ResponseWriter, r *http.Request, status int, call func(context.Context, Req) (Resp, error)) {
	var req Req
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBadJSON)
		return
	}
	resp, err := call(r.Context(), req)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, status, resp)
}

func (a *Auth) fail(w http.ResponseWriter, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		writeMessage(w, http.StatusBadRequest, fe.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, auth.ErrEmailTaken):
		writeMessage(w, http.StatusConflict, "Email is already registered.")
	case errors.Is(err, auth.ErrInvalidToken):
		writeMessage(w, http.StatusBadRequest, "Reset link is invalid or has expired.")
	default:
		a.log.Error("auth request failed", logger.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}
