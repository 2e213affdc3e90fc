package handler

import (
	"net/http"

	"github.com/dormlife/notice-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	services  *service.Service
	jwtSecret []byte
}

func New(logger *zap.Logger, services *service.Service, jwtSecret []byte) *Handler {
	registerJSONTagNames()
	return &Handler{
		logger:    logger,
		services:  services,
		jwtSecret: jwtSecret,
	}
}

// registerJSONTagNames makes validator report json field names instead of Go
// struct field names, so violation lists match the wire format.
func registerJSONTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func (h *Handler) SetupRoutes() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", h.health)

	api := router.Group("/api/notices")
	{
		api.GET("", h.noticesList)
		api.GET("/feed", h.noticesFeed)
		api.GET("/:id", h.noticesGet)

		admin := api.Group("", h.adminMiddleware())
		{
			admin.POST("", h.noticesCreate)
			admin.PUT("/:id", h.noticesUpdate)
			admin.DELETE("/:id", h.noticesDelete)
		}
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
