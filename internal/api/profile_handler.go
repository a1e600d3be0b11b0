package api

import (
	"net/http"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/session"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the active user's profile.
type ProfileHandler struct {
	store session.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store session.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

type UpdateProfileRequest struct {
	Name   *string        `json:"name,omitempty"`
	Email  *string        `json:"email,omitempty" binding:"omitempty,email"`
	Age    *int           `json:"age,omitempty"`
	Weight *float64       `json:"weight,omitempty"`
	Height *float64       `json:"height,omitempty"`
	Goals  *[]domain.Goal `json:"goals,omitempty"`
}

// GetProfile returns the active user.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := activeUser(c, h.store)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile merges the supplied fields into the active user and
// re-persists the record.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.Goals != nil {
		for _, g := range *req.Goals {
			if !domain.IsValidGoal(g) {
				abortWithError(c, http.StatusBadRequest, "Unknown fitness goal: "+string(g))
				return
			}
		}
	}

	if activeUser(c, h.store) == nil {
		return
	}

	err := h.store.UpdateProfile(c.Request.Context(), domain.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
		Goals:  req.Goals,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not update profile")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(h.store.Current()))
}
