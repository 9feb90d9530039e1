package jobs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hunterai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job-description routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job-descriptions/analyze", h.analyze)
	rg.GET("/job-descriptions/:id", h.get)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.URL) == "" && strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "url or text is required", nil)
		return
	}

	jd, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze job description", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(jd))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	jd, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job description not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job description", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(jd))
}
