package services

import (
	"context"
	"time"

	"github.com/elitk/elfitness/models"
)

// GoalService manages the user's daily intake targets. Saving new goals
// soft-supersedes the previous active set (deactivated, not deleted), so
// at most one set per user is active.
type GoalService struct {
	goals GoalStore
	store NutritionStore
}

func NewGoalService(goals GoalStore, store NutritionStore) *GoalService {
	return &GoalService{goals: goals, store: store}
}

func (s *GoalService) Active(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	return s.goals.GetActive(ctx, userID)
}

func (s *GoalService) Save(ctx context.Context, goal *models.NutritionGoal) (uint, error) {
	prev, err := s.goals.GetActive(ctx, goal.UserID)
	if err != nil {
		return 0, err
	}
	if prev != nil {
		if err := s.goals.Deactivate(ctx, prev.ID); err != nil {
			return 0, err
		}
	}
	goal.IsActive = true
	return s.goals.Create(ctx, goal)
}

// MetricProgress pairs today's consumption with its target.
type MetricProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// TodayProgress compares today's entry totals against the active goals.
// Percentages use the same unclamped math as the stats engine; without
// active goals or a today entry the consumed/percent values fall back
// to zero.
func (s *GoalService) TodayProgress(ctx context.Context, userID uint) (*models.NutritionGoal, map[string]MetricProgress, error) {
	goal, err := s.goals.GetActive(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if goal == nil {
		goal = &models.NutritionGoal{UserID: userID}
	}

	entry, err := s.store.GetByDate(ctx, userID, time.Now())
	if err != nil {
		return nil, nil, err
	}
	if entry == nil {
		entry = &models.NutritionEntry{UserID: userID}
	}

	progress := map[string]MetricProgress{
		"calories": metricProgress(entry.TotalCalories, goal.DailyCalories),
		"protein":  metricProgress(entry.Macros.Protein, goal.MacroTargets.Protein),
		"carbs":    metricProgress(entry.Macros.Carbs, goal.MacroTargets.Carbs),
		"fat":      metricProgress(entry.Macros.Fat, goal.MacroTargets.Fat),
		"water":    metricProgress(entry.WaterIntake, goal.WaterIntake),
	}
	return goal, progress, nil
}

func metricProgress(consumed, target float64) MetricProgress {
	p, err := Progress(consumed, target)
	if err != nil {
		p = 0
	}
	return MetricProgress{Consumed: consumed, Goal: target, Percent: p}
}
