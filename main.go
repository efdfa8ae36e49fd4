package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/paperstack/backend/internal/client"
	"github.com/paperstack/backend/internal/config"
	"github.com/paperstack/backend/internal/db"
	"github.com/paperstack/backend/internal/handler"
	"github.com/paperstack/backend/internal/service"
)

// @title paperstack backend API
// @version 1.0
// @description Account lifecycle, user listing and document pipeline API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	hasher := service.NewPasswordHasher()
	tokens, err := service.NewTokenService(cfg.Auth, store)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}
	authService := service.NewAuthService(store, hasher, tokens)
	userService := service.NewUserService(store)

	ssoService, err := service.NewSSOService(ctx, cfg.SSO, store, hasher, tokens)
	if err != nil {
		log.Fatalf("sso: %v", err)
	}

	var aiClient service.AIClient
	if cfg.AI.APIKey != "" {
		ai, err := client.NewAIClient(ctx, cfg.AI)
		if err != nil {
			log.Fatalf("ai: %v", err)
		}
		aiClient = ai
	} else {
		log.Println("AI_API_KEY not set, document enrichment disabled")
	}
	documentService := service.NewDocumentService(store, aiClient)
	reportService := service.NewReportService(store)

	authHandler := handler.NewAuthHandler(authService, tokens)
	userHandler := handler.NewUserHandler(userService)
	documentHandler := handler.NewDocumentHandler(documentService, reportService)
	ssoHandler := handler.NewSSOHandler(ssoService)

	router := gin.Default()
	if cfg.Server.AllowedOrigins != "" {
		router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ",")))
	}

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/sso/config", ssoHandler.Config)
			auth.GET("/sso/login", ssoHandler.Login)
			auth.GET("/sso/callback", ssoHandler.Callback)
		}

		protected := v1.Group("")
		protected.Use(handler.AuthMiddleware(tokens))
		{
			protected.DELETE("/auth/account", authHandler.Delete)
			protected.GET("/auth/me", authHandler.Me)
			protected.GET("/users", userHandler.List)
			protected.POST("/documents", documentHandler.Upload)
			protected.GET("/documents", documentHandler.List)
			protected.GET("/documents/report", documentHandler.Report)
		}
	}

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
