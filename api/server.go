package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/minhanle/servio-BE/internal/token"
	"github.com/minhanle/servio-BE/internal/util"
	"github.com/minhanle/servio-BE/internal/worker"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router              *gin.Engine
	dbStore             db.Store
	config              *util.Config
	tokenMaker          token.Maker
	notificationService *notification.Service
	taskDistributor     worker.TaskDistributor
	eventSender         event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, notificationService *notification.Service, taskDistributor worker.TaskDistributor, eventSender event.EventSender, config *util.Config) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:             store,
		config:              config,
		tokenMaker:          tokenMaker,
		notificationService: notificationService,
		taskDistributor:     taskDistributor,
		eventSender:         eventSender,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	// Notification APIs for the authenticated recipient. The scope is the
	// (subject, role) pair carried by the access token.
	notificationGroup := v1.Group("/notifications", authMiddleware(server.tokenMaker))
	{
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.GET("/unread-count", server.getUnreadCount)
		notificationGroup.GET("/history", server.getNotificationHistory)
		notificationGroup.GET("/recent", server.getRecentNotifications)
		notificationGroup.GET("/stream", server.streamNotifications)

		notificationGroup.PUT("/mark-all-read", server.markAllNotificationsRead)
		notificationGroup.PUT("/:id/mark-read", server.markNotificationRead)
	}

	// API for moderators to broadcast platform announcements
	moderatorGroup := v1.Group("/mod", authMiddleware(server.tokenMaker), requiredModeratorRole())
	{
		moderatorGroup.POST("/notifications", server.createAnnouncement)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
