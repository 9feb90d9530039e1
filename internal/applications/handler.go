package applications

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

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.create)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
	rg.PUT("/applications/:id/status", h.updateStatus)
	rg.POST("/applications/:id/notes", h.addNote)
}

type createRequest struct {
	JobDescriptionID string `json:"jobDescriptionId"`
	ResumeID         string `json:"resumeId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Create(c.Request.Context(), req.JobDescriptionID, req.ResumeID)
	if err != nil {
		h.respondError(c, err, "failed to create application")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(app))
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		h.respondError(c, err, "failed to list applications")
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toResponse(app))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	app, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch application")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	app, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.respondError(c, err, "failed to update status")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

type addNoteRequest struct {
	Note string `json:"note"`
}

func (h *Handler) addNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		h.respondError(c, err, "failed to add note")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, jobs.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job description not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
