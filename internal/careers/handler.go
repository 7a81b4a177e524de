package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the careers service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches career routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/career-suggestions", h.suggest)
	rg.GET("/career-suggestions", h.previous)
}

type suggestRequest struct {
	UserSkills    []string `json:"userSkills"`
	UserInterests []string `json:"userInterests"`
}

func (h *Handler) suggest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	// Body is optional: an empty or absent body means "use my profile".
	var req suggestRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
			return
		}
	}

	paths, err := h.Svc.Suggest(c.Request.Context(), userID, req.UserSkills, req.UserInterests)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate career suggestions", nil)
		return
	}
	respond.OK(c, gin.H{"suggestions": paths})
}

func (h *Handler) previous(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	prior, err := h.Svc.Previous(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load previous suggestions", nil)
		return
	}
	respond.OK(c, gin.H{"previousSuggestions": prior})
}
