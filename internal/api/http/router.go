package http

import (
	"time"

	_ "ninety-nine/docs"
	"ninety-nine/internal/api/ws"
	"ninety-nine/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(rm Rooms, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logrus.WithField("component", "http")))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/", IndexHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket for game sessions
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api")
	api.GET("/rooms", ListRoomsHandler(rm))
	api.POST("/rooms", CreateRoomHandler(rm))
	api.GET("/rooms/:roomId", GetRoomHandler(rm))
	api.GET("/rules", RulesHandler)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func requestLogger(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}
