package api

import (
	"errors"
	"net/http"

	"fitvibe/fitness-coach/internal/coach"
	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/session"

	"github.com/gin-gonic/gin"
)

// CoachHandler exposes the generation operations. It enriches requests with
// the active user's profile where the operation supports it.
type CoachHandler struct {
	coachService coach.Service
	store        session.Store
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService coach.Service, store session.Store) *CoachHandler {
	return &CoachHandler{coachService: coachService, store: store}
}

// --- Request/Response Structs ---

type WorkoutPlanRequest struct {
	Goal        string   `json:"goal" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Level       string   `json:"level" binding:"required"`
	Equipment   []string `json:"equipment,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

type DietPlanRequest struct {
	Goal        string   `json:"goal" binding:"required"`
	Meals       string   `json:"meals" binding:"required"`
	DietType    string   `json:"dietType" binding:"required"`
	Allergies   []string `json:"allergies,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
}

type ChatRequest struct {
	Messages []domain.ChatMessage `json:"messages" binding:"required,min=1"`
}

type AnalyzeFormRequest struct {
	Description string `json:"description" binding:"required"`
}

type PlanTextResponse struct {
	Plan string `json:"plan"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// --- Handler Methods ---

// GenerateWorkoutPlan builds and submits a workout-plan prompt.
func (h *CoachHandler) GenerateWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if activeUser(c, h.store) == nil {
		return
	}

	plan, err := h.coachService.GenerateWorkoutPlan(c.Request.Context(), domain.WorkoutRequest{
		Goal:        req.Goal,
		Duration:    req.Duration,
		Level:       req.Level,
		Equipment:   req.Equipment,
		Preferences: req.Preferences,
	})
	if err != nil {
		h.handleGenerationError(c, err, "Failed to generate workout plan. Please try again.")
		return
	}
	c.JSON(http.StatusOK, PlanTextResponse{Plan: plan})
}

// GenerateDietPlan builds and submits a diet-plan prompt. Absent profile
// numerics in the request fall back to the active user's profile values.
func (h *CoachHandler) GenerateDietPlan(c *gin.Context) {
	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user := activeUser(c, h.store)
	if user == nil {
		return
	}

	dietReq := domain.DietRequest{
		Goal:        req.Goal,
		Meals:       req.Meals,
		DietType:    req.DietType,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
		Age:         req.Age,
		Weight:      req.Weight,
		Height:      req.Height,
	}
	if dietReq.Age == nil {
		dietReq.Age = user.Age
	}
	if dietReq.Weight == nil {
		dietReq.Weight = user.Weight
	}
	if dietReq.Height == nil {
		dietReq.Height = user.Height
	}

	plan, err := h.coachService.GenerateDietPlan(c.Request.Context(), dietReq)
	if err != nil {
		h.handleGenerationError(c, err, "Failed to generate diet plan. Please try again.")
		return
	}
	c.JSON(http.StatusOK, PlanTextResponse{Plan: plan})
}

// Chat submits the full transcript plus the active user's profile context and
// returns one assistant turn. The client owns history accumulation and must
// resend the whole transcript each call.
func (h *CoachHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user := activeUser(c, h.store)
	if user == nil {
		return
	}

	reply, err := h.coachService.ChatWithAI(c.Request.Context(), req.Messages, user)
	if err != nil {
		h.handleGenerationError(c, err, "Failed to get AI response. Please try again.")
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// AnalyzeForm submits an exercise description for a structured form critique.
func (h *CoachHandler) AnalyzeForm(c *gin.Context) {
	var req AnalyzeFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if activeUser(c, h.store) == nil {
		return
	}

	analysis, err := h.coachService.AnalyzeForm(c.Request.Context(), req.Description)
	if err != nil {
		h.handleGenerationError(c, err, "Failed to analyze exercise form. Please try again.")
		return
	}
	c.JSON(http.StatusOK, PlanTextResponse{Plan: analysis})
}

func (h *CoachHandler) handleGenerationError(c *gin.Context, err error, message string) {
	if errors.Is(err, coach.ErrGenerationFailed) {
		abortWithError(c, http.StatusBadGateway, message)
		return
	}
	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}
