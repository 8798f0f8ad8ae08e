package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/dsaviz/internal/evaluator"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dsaviz/internal/replay"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/templates"
	"github.com/GriffinCanCode/dsaviz/internal/utils"
)

// Version is reported by the banner and health endpoints
const Version = "0.1.0"

// RunRequest is the body of POST /run
type RunRequest struct {
	Source string `json:"source"`
	Kind   string `json:"kind"`
}

// ReplayRequest is the body of POST /structures/:kind/replay
type ReplayRequest struct {
	Ops []replay.Op `json:"ops"`
}

// KindInfo describes one selectable structure kind
type KindInfo struct {
	Kind types.Kind `json:"kind"`
	Name string     `json:"name"`
	Ops  []string   `json:"ops"`
}

// Handlers contains all HTTP handlers
type Handlers struct {
	evaluator      *evaluator.Evaluator
	replayer       *replay.Replayer
	templates      *templates.Set
	metrics        *monitoring.Metrics
	maxSourceBytes int
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(
	ev *evaluator.Evaluator,
	replayer *replay.Replayer,
	tmpl *templates.Set,
	metrics *monitoring.Metrics,
	maxSourceBytes int,
) *Handlers {
	return &Handlers{
		evaluator:      ev,
		replayer:       replayer,
		templates:      tmpl,
		metrics:        metrics,
		maxSourceBytes: maxSourceBytes,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "DSA Visualizer",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"version": Version,
		"runs":    h.evaluator.Stats(),
	}
	if pool, ok := h.evaluator.PoolStats(); ok {
		body["sandbox_pool"] = pool
		if pool.Closed {
			body["status"] = "degraded"
		}
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Kinds lists every structure kind with its replay operations
func (h *Handlers) Kinds(c *gin.Context) {
	kinds := make([]KindInfo, 0, len(types.Kinds))
	for _, k := range types.Kinds {
		ops, err := replay.Ops(k)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		kinds = append(kinds, KindInfo{Kind: k, Name: k.DisplayName(), Ops: ops})
	}
	c.JSON(http.StatusOK, gin.H{"kinds": kinds})
}

// ListTemplates returns every starter program
func (h *Handlers) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.templates.All()})
}

// GetTemplate returns the starter program of one kind
func (h *Handlers) GetTemplate(c *gin.Context) {
	kind, err := types.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.templates.Get(kind)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, templates.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// Run evaluates a learner script. Script failures are reported inside the
// result with status 200; only malformed requests are rejected.
func (h *Handlers) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	kind, err := utils.ValidateKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSource(req.Source, h.maxSourceBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.evaluator.Run(c.Request.Context(), req.Source, kind)
	c.JSON(http.StatusOK, result)
}

// Replay applies a list of operations to a fresh engine
func (h *Handlers) Replay(c *gin.Context) {
	kind, err := types.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ReplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.replayer.Replay(kind, req.Ops)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, utils.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
