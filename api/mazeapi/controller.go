package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/session"
	"github.com/katalvlaran/lvmaze/topology"
)

// MaxTrace caps the number of steps returned in a traced response.
const MaxTrace = 20000

// StatusClientClosedRequest is answered when the client went away before
// the maze was finished. Nobody reads it; it keeps access logs honest.
const StatusClientClosedRequest = 499

// Generator is the part of session.Manager the controller needs. Serve
// HTTP from a Concurrent manager so independent clients do not cancel
// each other.
type Generator interface {
	Generate(ctx context.Context, cfg config.Config, obs session.Observer) (session.Summary, error)
}

// MazeController handles maze generation requests.
type MazeController struct {
	generator Generator
	defaults  config.Config
}

// NewMazeController creates a MazeController. defaults fills the fields a
// request leaves empty.
func NewMazeController(g Generator, defaults config.Config) *MazeController {
	return &MazeController{
		generator: g,
		defaults:  defaults,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/options", mc.options)
	}
	route.GET("/health", mc.health)
}

// generate builds one maze.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := mc.toConfig(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		trace     []session.StepView
		truncated bool
		obs       session.Observer
	)
	if request.Trace {
		cfg.Animated = true
		cfg.StepDelay = 0
		obs = session.ObserverFunc(func(_ uuid.UUID, s maze.Step) error {
			if len(trace) >= MaxTrace {
				truncated = true
				return nil
			}
			trace = append(trace, session.NewStepView(s))
			return nil
		})
	}

	sum, err := mc.generator.Generate(ctx.Request.Context(), cfg, obs)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}
	if sum.Stop == maze.StopCancelled.String() {
		if ctx.Request.Context().Err() != nil {
			ctx.AbortWithStatus(StatusClientClosedRequest)
			return
		}
		// An exclusive generator cancels this run when a newer one starts.
		ctx.JSON(http.StatusConflict, gin.H{"error": "generation superseded by a newer request", "id": sum.ID})
		return
	}

	ctx.JSON(http.StatusOK, &GenerateResponse{
		Summary:        sum,
		Trace:          trace,
		TraceTruncated: truncated,
	})
}

// options lists the accepted topologies, algorithms and dimension range.
func (mc *MazeController) options(ctx *gin.Context) {
	resp := OptionsResponse{
		MinDimension: config.MinDimension,
		MaxDimension: config.MaxDimension,
	}
	for _, k := range topology.Kinds() {
		resp.Topologies = append(resp.Topologies, k.String())
	}
	for _, a := range maze.Algorithms() {
		resp.Algorithms = append(resp.Algorithms, a.String())
	}

	ctx.JSON(http.StatusOK, resp)
}

func (mc *MazeController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// toConfig overlays request on the controller defaults.
func (mc *MazeController) toConfig(request GenerateRequest) (config.Config, error) {
	cfg := mc.defaults
	cfg.Animated = false
	cfg.StepDelay = 0
	cfg.Seed = request.Seed

	if request.Width != 0 {
		cfg.Width = request.Width
	}
	if request.Height != 0 {
		cfg.Height = request.Height
	}
	if request.Topology != "" {
		k, err := topology.ParseKind(request.Topology)
		if err != nil {
			return cfg, err
		}
		cfg.Topology = k
	}
	if request.Algorithm != "" {
		a, err := maze.ParseAlgorithm(request.Algorithm)
		if err != nil {
			return cfg, err
		}
		cfg.Algorithm = a
	}
	if request.MaxSteps != nil {
		cfg.MaxSteps = *request.MaxSteps
	}

	return cfg, cfg.Validate()
}
