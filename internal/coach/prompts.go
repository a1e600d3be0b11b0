package coach

import (
	"fmt"
	"strconv"
	"strings"

	"fitvibe/fitness-coach/internal/domain"
)

// Placeholder text substituted for absent optional values. The substitution
// is a hard contract: prompts must stay deterministic for the same request
// and must never interpolate an empty or zero value.
const (
	placeholderNotSpecified  = "not specified"
	placeholderNoneSpecified = "none specified"
	defaultEquipment         = "bodyweight exercises"
)

// BuildWorkoutPrompt renders the workout-plan generation prompt. Pure
// templating; no network involved.
func BuildWorkoutPrompt(req domain.WorkoutRequest) string {
	equipment := defaultEquipment
	if len(req.Equipment) > 0 {
		equipment = strings.Join(req.Equipment, ", ")
	}

	return fmt.Sprintf(`Create a detailed workout plan with the following specifications:
- Goal: %s
- Duration: %s minutes
- Fitness Level: %s
- Equipment: %s

Please provide:
1. A structured workout plan with exercises, sets, reps, and rest periods
2. Warm-up routine (5-10 minutes)
3. Main workout exercises with proper form cues
4. Cool-down and stretching routine
5. Tips for progression and safety

Format the response in a clear, easy-to-follow structure with proper headings and bullet points.`,
		req.Goal, req.Duration, req.Level, equipment)
}

// BuildDietPrompt renders the diet-plan generation prompt. Absent age,
// weight and height become "not specified"; absent allergies become
// "none specified".
func BuildDietPrompt(req domain.DietRequest) string {
	allergies := placeholderNoneSpecified
	if len(req.Allergies) > 0 {
		allergies = strings.Join(req.Allergies, ", ")
	}

	return fmt.Sprintf(`Create a personalized diet plan with the following specifications:
- Goal: %s
- Meals per day: %s
- Diet type: %s
- Age: %s
- Weight: %s lbs
- Height: %s inches
- Allergies: %s

Please provide:
1. Daily meal plan with specific meals and portions
2. Macronutrient breakdown (protein, carbs, fats)
3. Calorie targets for each meal
4. Healthy snack options
5. Hydration recommendations
6. Meal prep tips

Format the response with clear meal sections and nutritional information.`,
		req.Goal, req.Meals, req.DietType,
		orNotSpecifiedInt(req.Age), orNotSpecifiedFloat(req.Weight), orNotSpecifiedFloat(req.Height),
		allergies)
}

// BuildChatPrompt serializes the full conversation plus an optional profile
// context block into one prompt. The caller owns history accumulation and
// passes the complete transcript, including the just-added user turn.
func BuildChatPrompt(history []domain.ChatMessage, profile *domain.User) string {
	var transcript strings.Builder
	for i, msg := range history {
		if i > 0 {
			transcript.WriteString("\n")
		}
		label := "User"
		if msg.Role == domain.ChatRoleAssistant {
			label = "AI Fitness Coach"
		}
		transcript.WriteString(label)
		transcript.WriteString(": ")
		transcript.WriteString(msg.Content)
	}

	profileContext := ""
	if profile != nil {
		goals := placeholderNotSpecified
		if len(profile.Goals) > 0 {
			tags := make([]string, len(profile.Goals))
			for i, g := range profile.Goals {
				tags[i] = string(g)
			}
			goals = strings.Join(tags, ", ")
		}
		profileContext = fmt.Sprintf(`User Profile:
- Name: %s
- Age: %s
- Weight: %s lbs
- Height: %s inches
- Goals: %s

`,
			profile.Name,
			orNotSpecifiedInt(profile.Age), orNotSpecifiedFloat(profile.Weight), orNotSpecifiedFloat(profile.Height),
			goals)
	}

	return fmt.Sprintf(`You are an expert AI fitness coach and nutritionist. You provide personalized advice on:
- Workout routines and exercise form
- Nutrition and meal planning
- Fitness goal setting and motivation
- Injury prevention and recovery
- Healthy lifestyle habits

%sConversation History:
%s

Please respond as a knowledgeable, encouraging, and supportive fitness coach. Keep responses helpful, practical, and motivating. If asked about medical conditions or injuries, recommend consulting with healthcare professionals.`,
		profileContext, transcript.String())
}

// BuildFormAnalysisPrompt renders the exercise-form critique prompt.
func BuildFormAnalysisPrompt(description string) string {
	return fmt.Sprintf(`As a fitness expert, analyze the following exercise description and provide form feedback:

Exercise: %s

Please provide:
1. Proper form checklist
2. Common mistakes to avoid
3. Safety tips
4. Progression suggestions
5. Muscle groups targeted

Keep the response practical and easy to understand.`, description)
}

func orNotSpecifiedInt(v *int) string {
	if v == nil {
		return placeholderNotSpecified
	}
	return strconv.Itoa(*v)
}

func orNotSpecifiedFloat(v *float64) string {
	if v == nil {
		return placeholderNotSpecified
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
