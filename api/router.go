// Package api wires the HTTP controllers onto a Gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvmaze/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	engine      *gin.Engine
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // Mode for the Gin framework (release, debug, test)
	Controllers []i.Controller
}

// NewRouter creates a Router and registers every controller under
// BaseURL + "/v1".
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	r := &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		engine:      gin.New(),
	}
	r.engine.Use(gin.Logger(), gin.Recovery())

	api := r.engine.Group(r.baseURL)
	{
		public := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(public)
			}
		}
	}

	return r
}

// Engine exposes the underlying handler, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.engine.Run(r.addr)
}
