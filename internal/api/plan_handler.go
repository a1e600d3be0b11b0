package api

import (
	"net/http"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/planmark"
	"fitvibe/fitness-coach/internal/session"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the saved-plan collection of the active user.
type PlanHandler struct {
	store session.Store
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(store session.Store) *PlanHandler {
	return &PlanHandler{store: store}
}

type SavePlanRequest struct {
	Type    domain.PlanType `json:"type" binding:"required,oneof=workout diet"`
	Title   string          `json:"title" binding:"required"`
	Content string          `json:"content" binding:"required"`
}

// RenderedPlanResponse is a saved plan with its content parsed into markup
// blocks, so every client renders it with identical rules. Headings is the
// table of contents, in document order.
type RenderedPlanResponse struct {
	ID       string           `json:"id"`
	Type     domain.PlanType  `json:"type"`
	Title    string           `json:"title"`
	Blocks   []planmark.Block `json:"blocks"`
	Headings []string         `json:"headings"`
}

// ListPlans returns the saved plans of the active user, in save order.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	user := activeUser(c, h.store)
	if user == nil {
		return
	}
	plans := user.SavedPlans
	if plans == nil {
		plans = []domain.SavedPlan{}
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// SavePlan appends a plan snapshot to the active user's collection. Any
// valid payload is accepted; it does not have to come from the immediately
// preceding generation call.
func (h *PlanHandler) SavePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if activeUser(c, h.store) == nil {
		return
	}

	err := h.store.SavePlan(c.Request.Context(), session.SavePlanInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not save plan")
		return
	}

	user := h.store.Current()
	c.JSON(http.StatusCreated, gin.H{"plans": user.SavedPlans})
}

// DeletePlan removes a plan by ID. Deletion is idempotent: an unknown ID
// still yields 204.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")

	if activeUser(c, h.store) == nil {
		return
	}

	if err := h.store.DeletePlan(c.Request.Context(), planID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not delete plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRenderedPlan returns one saved plan with its content parsed by the
// shared markup grammar.
func (h *PlanHandler) GetRenderedPlan(c *gin.Context) {
	planID := c.Param("planId")

	user := activeUser(c, h.store)
	if user == nil {
		return
	}

	for _, p := range user.SavedPlans {
		if p.ID == planID {
			blocks := planmark.Parse(p.Content)
			c.JSON(http.StatusOK, RenderedPlanResponse{
				ID:       p.ID,
				Type:     p.Type,
				Title:    p.Title,
				Blocks:   blocks,
				Headings: planmark.Headings(blocks),
			})
			return
		}
	}
	abortWithError(c, http.StatusNotFound, "Plan not found")
}
