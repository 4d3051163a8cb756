package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	h := handlers.NewAuth(d.Auth, d.Logger)
	r.Route("/auth", func(r chi.Router) {
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.AuthBurst,
			RefillPerIPPerMin: d.AuthPerMin,
			MaxEntries:        10_000,
			TrustProxy:        d.TrustProxy,
		}))
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)
	})
}
