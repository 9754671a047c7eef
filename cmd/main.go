package main

import (
	"net/http"
	"os"
	"time"

	"compogen/api/handler"
	apiMiddleware "compogen/api/middleware"
	"compogen/api/routes"
	"compogen/config"
	"compogen/internal/repository"
	"compogen/internal/service"
	"compogen/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	validate := validator.New()

	jwtManager := &utils.JWTManager{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		TokenTTL: config.TokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	clock := service.RealClock{}
	authService := service.NewAuthService(
		userRepo,
		service.BcryptPasswordHasher{},
		service.JWTTokenIssuer{Manager: jwtManager},
		clock,
	)
	sessionService := service.NewSessionService(sessionRepo, clock)

	var upstream service.Generator
	if gemini := service.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel); gemini != nil {
		upstream = gemini
	}
	aiService := service.NewAIService(upstream, clock)
	contactService := service.NewContactService(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo, logger)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.SecureCookies
	if !cfg.IsProduction() {
		authHandler.SameSite = http.SameSiteLaxMode
	}

	sessionHandler := handler.NewSessionHandler(sessionService, validate)
	aiHandler := handler.NewAIHandler(aiService, validate)
	contactHandler := handler.NewContactHandler(contactService, validate)
	healthHandler := &handler.HealthHandler{DB: db, Env: cfg.Env}

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
		AllowCredentials: true,
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: jwtManager, Users: userRepo}
	router := routes.NewRouter(app, authHandler, sessionHandler, aiHandler, contactHandler, healthHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
