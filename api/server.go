package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/minhnq/campushub-BE/internal/stream"
	"github.com/minhnq/campushub-BE/internal/token"
	"github.com/minhnq/campushub-BE/internal/util"
	"github.com/minhnq/campushub-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router          *gin.Engine
	dbStore         db.Store
	redisClient     *redis.Client
	tokenMaker      token.Maker
	config          *util.Config
	taskDistributor worker.TaskDistributor
	notifStore      notification.Store
	dispatcher      *notification.Dispatcher
	registry        stream.Registry
	streamConfig    stream.Config
}

// NewServer creates a new HTTP server and set up routing. redisClient and
// alerter may be nil: the unread badge cache and ops alerts are then
// disabled.
func NewServer(store db.Store, redisClient *redis.Client, taskDistributor worker.TaskDistributor, config *util.Config, alerter notification.Alerter) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	notifStore := notification.NewPGStore(store)
	prefFilter := notification.NewPreferenceFilter(notification.NewPGPreferenceSource(store))

	var emails notification.EmailQueue
	if taskDistributor != nil {
		emails = taskDistributor
	}
	dispatcher := notification.NewDispatcher(notifStore, prefFilter, emails, alerter)
	log.Info().Msg("Fan-out dispatcher created successfully ✅")

	server := &Server{
		dbStore:         store,
		redisClient:     redisClient,
		tokenMaker:      tokenMaker,
		config:          config,
		taskDistributor: taskDistributor,
		notifStore:      notifStore,
		dispatcher:      dispatcher,
		registry:        stream.NewRegistry(),
		streamConfig: stream.Config{
			PollInterval:       config.StreamPollInterval,
			HeartbeatInterval:  config.StreamHeartbeatInterval,
			PageSize:           config.StreamPageSize,
			MaxDrainIterations: config.StreamMaxDrainIterations,
			IdleTimeout:        config.StreamIdleTimeout,
			MaxLifetime:        config.StreamMaxSessionLifetime,
			MaxPollFailures:    config.StreamMaxPollFailures,
		},
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.POST("/tokens/verify", server.verifyAccessToken)

	// Thông báo của người dùng đã đăng nhập
	notificationGroup := v1.Group("/notifications", authMiddleware(server.tokenMaker))
	{
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.GET("/unread-count", server.countUnreadNotifications)
		notificationGroup.PATCH(":id/read", server.markNotificationRead)
		notificationGroup.PATCH("/read-all", server.markAllNotificationsRead)
	}

	// Luồng SSE: tự xác thực bên trong handler vì EventSource không gửi
	// được Authorization header.
	v1.GET("/notifications/stream", server.streamNotifications)

	settingsGroup := v1.Group("/users/me/notification-settings", authMiddleware(server.tokenMaker))
	{
		settingsGroup.GET("", server.getNotificationSettings)
		settingsGroup.PUT("", server.updateNotificationSettings)
	}

	// Đăng thông báo chung cho một lớp học
	v1.POST("/announcements", authMiddleware(server.tokenMaker), requiredStaffRole(), server.createAnnouncement)

	adminGroup := v1.Group("/admin", authMiddleware(server.tokenMaker), requiredAdminRole())
	{
		adminGroup.GET("/stream-sessions", server.listStreamSessions)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
