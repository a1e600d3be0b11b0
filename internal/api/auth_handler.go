package api

import (
	"net/http"
	"time"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the session store and token settings.
type AuthHandler struct {
	store         session.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store session.Store, jwtSecret string, jwtExpiration time.Duration) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret, jwtExpiration: jwtExpiration}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Age      *int          `json:"age,omitempty"`
	Weight   *float64      `json:"weight,omitempty"`
	Height   *float64      `json:"height,omitempty"`
	Goals    []domain.Goal `json:"goals,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes the stored password hash.
type UserResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Age        *int               `json:"age,omitempty"`
	Weight     *float64           `json:"weight,omitempty"`
	Height     *float64           `json:"height,omitempty"`
	Goals      []domain.Goal      `json:"goals"`
	SavedPlans []domain.SavedPlan `json:"savedPlans"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates the new active user from the submitted form fields. Email
// collisions are not detected; there is no account database to collide in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	for _, g := range req.Goals {
		if !domain.IsValidGoal(g) {
			abortWithError(c, http.StatusBadRequest, "Unknown fitness goal: "+string(g))
			return
		}
	}

	user, err := h.store.Register(c.Request.Context(), session.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
		Goals:    req.Goals,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		return
	}

	token, err := generateToken(user.ID, user.Email, h.jwtSecret, h.jwtExpiration)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{Token: token, User: MapUserToResponse(user)})
}

// Login activates the canonical demo profile bound to the submitted email.
// Any email and password pair succeeds; this is documented behavior, not a
// security feature.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		return
	}

	token, err := generateToken(user.ID, user.Email, h.jwtSecret, h.jwtExpiration)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: MapUserToResponse(user)})
}

// Logout clears the active user and its persisted copy. Safe to call twice.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not clear session")
		return
	}
	c.Status(http.StatusNoContent)
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	resp := UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Age:        user.Age,
		Weight:     user.Weight,
		Height:     user.Height,
		Goals:      user.Goals,
		SavedPlans: user.SavedPlans,
	}
	if resp.Goals == nil {
		resp.Goals = []domain.Goal{}
	}
	if resp.SavedPlans == nil {
		resp.SavedPlans = []domain.SavedPlan{}
	}
	return resp
}
