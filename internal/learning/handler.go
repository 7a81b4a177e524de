package learning

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the learning service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches learning routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/learning-suggestions", h.suggest)
	rg.GET("/learning-suggestions", h.previous)
	rg.GET("/learning-resources", h.savedResources)
}

func (h *Handler) suggest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	suggestions, err := h.Svc.Suggest(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate learning suggestions", nil)
		return
	}
	if suggestions.Message != "" {
		c.Set("fallbackPath", "incomplete_profile")
	}
	respond.OK(c, suggestions)
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

func (h *Handler) savedResources(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resources, err := h.Svc.SavedResources(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load learning resources", nil)
		return
	}
	respond.OK(c, gin.H{"learningResources": resources})
}
