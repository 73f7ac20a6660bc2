package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/defensoria-df/solar-transcricao/internal/adapter/dto/common"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	workflowHandler *Workflow
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, workflowHandler *Workflow) *Router {
	return &Router{
		cfg:             cfg,
		workflowHandler: workflowHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	rt.setupWorkflowRoutes(e)
}

// setupWorkflowRoutes configures the case video pipeline routes
func (rt *Router) setupWorkflowRoutes(e *echo.Echo) {
	e.POST("/consultar-processo", rt.workflowHandler.ConsultarProcesso)
	e.POST("/transcrever", rt.workflowHandler.Transcrever)
	e.POST("/enviar-solar", rt.workflowHandler.EnviarSolar)

	sessionGroup := e.Group("/sessao")
	sessionGroup.GET("", rt.workflowHandler.GetSessao)
	sessionGroup.DELETE("", rt.workflowHandler.DeleteSessao)
}

// healthCheck returns health status
// @Summary  Health check
// @Tags     Health
// @Produce  json
// @Success  200  {object}  common.HealthResponse
// @Router   /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
		Time:        time.Now().UTC(),
	})
}
