package services

import (
	"context"
	"sort"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"

	log "github.com/sirupsen/logrus"
)

// StatsService derives the dashboard summary for a rolling window of
// daily entries plus the user's current logging streak.
type StatsService struct {
	store NutritionStore
	goals GoalStore
}

func NewStatsService(store NutritionStore, goals GoalStore) *StatsService {
	return &StatsService{store: store, goals: goals}
}

// NutritionStats is computed on demand and never persisted.
type NutritionStats struct {
	AvgDailyCalories    float64 `json:"avg_daily_calories"`
	AvgDailyProtein     float64 `json:"avg_daily_protein"`
	AvgDailyCarbs       float64 `json:"avg_daily_carbs"`
	AvgDailyFat         float64 `json:"avg_daily_fat"`
	AvgWaterIntake      float64 `json:"avg_water_intake"`
	CalorieGoalProgress float64 `json:"calorie_goal_progress"`
	MacroGoalProgress   struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
	} `json:"macro_goal_progress"`
	Streak int `json:"streak"`
}

// Stats aggregates the last windowDays of entries. Averages are taken
// over the days that actually have an entry, not over windowDays: a user
// who logged 3 of the last 30 days gets a 3-day mean. The streak is
// computed over the full history, independent of the window. An empty
// window yields a zero summary, never an error.
func (s *StatsService) Stats(ctx context.Context, userID uint, windowDays int) (*NutritionStats, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	now := time.Now()
	from := dayStart(now.AddDate(0, 0, -windowDays))

	entries, err := s.store.ListRange(ctx, userID, from, dayEnd(now))
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &NutritionStats{}
	if len(entries) == 0 {
		return out, nil
	}

	var calories, protein, carbs, fat, water float64
	for _, e := range entries {
		calories += e.TotalCalories
		protein += e.Macros.Protein
		carbs += e.Macros.Carbs
		fat += e.Macros.Fat
		water += e.WaterIntake
	}
	n := float64(len(entries))
	out.AvgDailyCalories = calories / n
	out.AvgDailyProtein = protein / n
	out.AvgDailyCarbs = carbs / n
	out.AvgDailyFat = fat / n
	out.AvgWaterIntake = water / n

	if goal != nil {
		out.CalorieGoalProgress = progressOrZero(userID, "calories", out.AvgDailyCalories, goal.DailyCalories)
		out.MacroGoalProgress.Protein = progressOrZero(userID, "protein", out.AvgDailyProtein, goal.MacroTargets.Protein)
		out.MacroGoalProgress.Carbs = progressOrZero(userID, "carbs", out.AvgDailyCarbs, goal.MacroTargets.Carbs)
		out.MacroGoalProgress.Fat = progressOrZero(userID, "fat", out.AvgDailyFat, goal.MacroTargets.Fat)
	}

	history, err := s.store.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	out.Streak = CalculateStreak(history, now)

	return out, nil
}

// Progress is the unclamped percentage of actual against target. Values
// over 100 mean "over target" and are intentional; clamping belongs to
// progress-bar rendering, not here. A target of zero or less yields
// ErrInvalidGoalTarget with 0 instead of Inf/NaN.
func Progress(actual, target float64) (float64, error) {
	if target <= 0 {
		return 0, errvalues.ErrInvalidGoalTarget
	}
	return actual / target * 100, nil
}

// MacroProgress applies Progress field-wise for the three macro energy
// sources. Fiber and sugar are not part of goal comparison.
func MacroProgress(actual, target models.MacroNutrients) (protein, carbs, fat float64) {
	protein, _ = Progress(actual.Protein, target.Protein)
	carbs, _ = Progress(actual.Carbs, target.Carbs)
	fat, _ = Progress(actual.Fat, target.Fat)
	return protein, carbs, fat
}

func progressOrZero(userID uint, metric string, actual, target float64) float64 {
	p, err := Progress(actual, target)
	if err != nil {
		log.WithFields(log.Fields{"user_id": userID, "metric": metric}).
			Warn("goal target not positive, reporting 0% progress")
		return 0
	}
	return p
}

// CalculateStreak counts consecutive calendar days with a logged entry,
// ending at today. The walk starts at today itself: an unlogged today
// breaks the streak immediately, so an entry only for yesterday counts
// as 0. A single missing day anywhere terminates the count.
func CalculateStreak(entries []models.NutritionEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	sorted := make([]models.NutritionEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	today := dayStart(now)
	streak := 0
	for _, e := range sorted {
		if daysBetween(dayStart(e.Date), today) != streak {
			break
		}
		streak++
	}
	return streak
}
