package ats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hunterai-backend/internal/jobs"
	"hunterai-backend/internal/resumes"
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

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ats/score", h.score)
}

func (h *Handler) score(c *gin.Context) {
	resumeID := c.Query("resumeId")
	jobDescriptionID := c.Query("jobDescriptionId")
	if resumeID == "" || jobDescriptionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId and jobDescriptionId are required", nil)
		return
	}

	result, err := h.Svc.Score(c.Request.Context(), resumeID, jobDescriptionID)
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job description not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to calculate score", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(result))
}
