package coach

import (
	"context"
	"errors"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/logger"
)

// ErrGenerationFailed is the single failure every provider fault collapses
// into. Sub-causes (network, quota, malformed prompt) are logged but not
// distinguished to callers, and no retry is attempted.
var ErrGenerationFailed = errors.New("failed to generate content")

// Service translates structured coaching requests into prompts, submits them
// to the completer and normalizes results. Each operation is a deterministic
// templating step plus one external call; the service holds no conversation
// state between calls.
type Service interface {
	GenerateWorkoutPlan(ctx context.Context, req domain.WorkoutRequest) (string, error)
	GenerateDietPlan(ctx context.Context, req domain.DietRequest) (string, error)
	ChatWithAI(ctx context.Context, history []domain.ChatMessage, profile *domain.User) (string, error)
	AnalyzeForm(ctx context.Context, description string) (string, error)
}

type coachService struct {
	completer Completer
}

// NewService creates the coaching orchestrator over a completer.
func NewService(completer Completer) Service {
	return &coachService{completer: completer}
}

func (s *coachService) GenerateWorkoutPlan(ctx context.Context, req domain.WorkoutRequest) (string, error) {
	return s.complete(ctx, "workout_plan", BuildWorkoutPrompt(req))
}

func (s *coachService) GenerateDietPlan(ctx context.Context, req domain.DietRequest) (string, error) {
	return s.complete(ctx, "diet_plan", BuildDietPrompt(req))
}

func (s *coachService) ChatWithAI(ctx context.Context, history []domain.ChatMessage, profile *domain.User) (string, error) {
	return s.complete(ctx, "chat", BuildChatPrompt(history, profile))
}

func (s *coachService) AnalyzeForm(ctx context.Context, description string) (string, error) {
	return s.complete(ctx, "form_analysis", BuildFormAnalysisPrompt(description))
}

func (s *coachService) complete(ctx context.Context, op, prompt string) (string, error) {
	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		logger.Error("generation request failed", "op", op, "error", err)
		return "", ErrGenerationFailed
	}
	return text, nil
}
