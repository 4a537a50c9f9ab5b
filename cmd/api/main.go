package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"deskbooker/internal/client"
	"deskbooker/internal/config"
	"deskbooker/internal/database"
	"deskbooker/internal/layout"
	authmod "deskbooker/internal/modules/auth"
	bookingmod "deskbooker/internal/modules/booking"
	"deskbooker/internal/modules/floormap"
	"deskbooker/internal/modules/schedule"
	"deskbooker/internal/notification"
	jwtsvc "deskbooker/internal/pkg/jwt"
	"deskbooker/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	sessionRepo := repository.NewSessionRepository(db)
	if err := sessionRepo.Migrate(); err != nil {
		log.Fatal(err)
	}

	api := client.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	if cfg.BackendServiceToken != "" {
		api = api.WithToken(cfg.BackendServiceToken)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	hub := notification.NewHub()
	notifier := notification.NewNotifier(hub)

	registry := layout.NewRegistry()

	authService := authmod.NewService(api, sessionRepo, j, cfg.SessionTTL)
	authHandler := authmod.NewHandler(authService)

	floormapService := floormap.NewService(api, api, api, registry, notifier)
	floormapHandler := floormap.NewHandler(floormapService)

	bookingService := bookingmod.NewService(api, floormapService, notifier)
	bookingHandler := bookingmod.NewHandler(bookingService)

	scheduleService := schedule.NewService(api, cfg.WorkingDaysLimit)
	scheduleHandler := schedule.NewHandler(scheduleService)

	wsHandler := notification.NewHandler(hub, j)

	go authService.RunCleanup(context.Background(), cfg.SessionCleanupInterval)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(authMiddleware(j, authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			floormapHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			scheduleHandler.RegisterRoutes(protected)
		}
	}

	log.Println("deskbooker listening on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service, auth *authmod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing or invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		// The token is only half of it: the referenced session must still
		// be alive, so logout takes effect immediately.
		if _, err := auth.Session(c.Request.Context(), claims.SessionID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Session expired",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}
