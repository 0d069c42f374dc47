/*
Package handler provides the HTTP handlers and routing setup for the interview assistant.

This file defines the main Router, applying logging, CORS, session and rate-limiting
middleware before delegating to the page and action handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"interviewbot/internal/pkg/auth/jwt"
	"interviewbot/internal/pkg/limiter"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/pkg/resp"
)

const (
	AuthRate   = 0.2
	AuthBurst  = 5
	ModelRate  = 0.1
	ModelBurst = 3
)

// Router sets up the application's routing table. The returned stop function ends the
// background cleanup of the rate limiters.
func Router(deps *AppDeps) (http.Handler, func()) {
	authLimiter := limiter.NewIPRateLimiter("auth", rate.Limit(AuthRate), AuthBurst)
	modelLimiter := limiter.NewIPRateLimiter("model", rate.Limit(ModelRate), ModelBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Datastar-Request"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"status":   "ok",
			"service":  "Interview Assistant",
			"sessions": deps.Sessions.Len(),
		})
	})

	r.Group(func(ui chi.Router) {
		ui.Use(jwt.SessionMiddleware(deps.Sessions, jwt.CookieOptions{
			Secret: deps.Config.JWTSecret,
			TTL:    deps.Config.SessionTTL,
			Secure: !deps.Config.IsDevelopment(),
		}))

		ui.Get("/", HandlePage(deps))

		ui.Route("/ui", func(a chi.Router) {
			a.With(authLimiter.Middleware).Post("/signup", HandleSignup(deps))
			a.With(authLimiter.Middleware).Post("/login", HandleLogin(deps))
			a.Post("/logout", HandleLogout(deps))

			a.Post("/chats", HandleCreateChat(deps))
			a.Post("/chats/{index}/select", HandleSelectChat(deps))
			a.Post("/chats/delete", HandleDeleteChat(deps))

			a.With(modelLimiter.Middleware).Post("/generate", HandleGenerate(deps))
			a.With(modelLimiter.Middleware).Post("/doubt", HandleDoubt(deps))
		})
	})

	stop := func() {
		authLimiter.Stop()
		modelLimiter.Stop()
	}
	return r, stop
}
