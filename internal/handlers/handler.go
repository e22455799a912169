package handlers

import (
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	router.POST("/sign-up", h.signUp)
	router.POST("/sign-in", h.signIn)

	// Bearer-token protected endpoints
	authed := router.Group("/", h.authMiddleware)
	{
		authed.POST("/sign-out", h.signOut)
		authed.POST("/transactions", h.createTransaction)
		authed.GET("/transactions", h.listTransactions)
	}

	// Live balance stream (HTTP upgrade) — same port, token via query param
	router.GET("/ws/summary", h.wsSummary)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
