package routes

import (
	"time"

	"compogen/api/handler"
	"compogen/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Sessions       *handler.SessionHandler
	AI             *handler.AIHandler
	Contact        *handler.ContactHandler
	Health         *handler.HealthHandler
	AuthMiddleware middleware.AuthMiddleware
	SignupRate     *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	sessions *handler.SessionHandler,
	ai *handler.AIHandler,
	contact *handler.ContactHandler,
	health *handler.HealthHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Sessions:       sessions,
		AI:             ai,
		Contact:        contact,
		Health:         health,
		AuthMiddleware: authMiddleware,
		SignupRate:     middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	api := r.Echo.Group("/api")

	api.GET("/health", r.Health.Check)
	api.POST("/contact", r.Contact.Submit, r.SignupRate.Middleware())

	auth := api.Group("/auth")
	auth.POST("/signup", r.Auth.Signup, r.SignupRate.Middleware())
	auth.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
	auth.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)
	auth.PUT("/profile", r.Auth.UpdateProfile, r.AuthMiddleware.RequireAuth)
	auth.POST("/logout", r.Auth.Logout)

	sessions := api.Group("/session", r.AuthMiddleware.RequireAuth)
	sessions.GET("", r.Sessions.List)
	sessions.POST("", r.Sessions.Create)
	sessions.GET("/:id", r.Sessions.Get)
	sessions.PUT("/:id", r.Sessions.Update)
	sessions.DELETE("/:id", r.Sessions.Delete)
	sessions.POST("/:id/chat", r.Sessions.AppendChat)

	ai := api.Group("/ai", r.AuthMiddleware.RequireAuth)
	ai.POST("/generate", r.AI.Generate)
	ai.POST("/chat", r.AI.Chat)
	ai.POST("/refine", r.AI.Refine)
}
