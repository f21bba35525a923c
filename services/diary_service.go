package services

import (
	"context"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"
)

// DiaryService owns the daily nutrition entry: one entry per (user, day),
// created on the first food or water log and updated in place afterwards.
type DiaryService struct {
	store NutritionStore
	foods FoodStore
	water WaterStore
	hub   *RealtimeHub // optional
}

func NewDiaryService(store NutritionStore, foods FoodStore, water WaterStore, hub *RealtimeHub) *DiaryService {
	return &DiaryService{store: store, foods: foods, water: water, hub: hub}
}

// AddFood logs servings of a catalog food into the given meal slot of the
// user's entry for date. The food snapshot is append-only: logging the
// same food twice produces two entries and doubled totals.
func (s *DiaryService) AddFood(
	ctx context.Context,
	userID uint,
	date time.Time,
	foodID string,
	servings float64,
	mealType models.MealType,
) (*models.NutritionEntry, error) {
	if servings <= 0 {
		return nil, errvalues.ErrInvalidServings
	}
	if !mealType.Valid() {
		return nil, errvalues.ErrUnknownMealType
	}

	food, err := s.foods.GetByFoodID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.NutritionEntry{UserID: userID, Date: dayStart(date)}
	}

	meal := entry.MealOfType(mealType)
	if meal == nil {
		entry.Meals = append(entry.Meals, models.Meal{EntryID: entry.ID, Type: mealType})
		meal = &entry.Meals[len(entry.Meals)-1]
	}

	meal.Foods = append(meal.Foods, models.FoodLogEntry{
		FoodID:   food.FoodID,
		FoodName: food.Name,
		Servings: servings,
		Calories: food.CaloriesPerServing * servings,
		Macros:   ScaleMacros(food.Macros, servings),
		LoggedAt: time.Now(),
	})

	rebuildMealTotals(meal)
	rebuildEntryTotals(entry)

	if _, err := s.store.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.notifyDay(entry)
	return entry, nil
}

// RemoveFood drops one logged food from the day's entry and recomputes
// the affected meal and the day from their remaining children.
func (s *DiaryService) RemoveFood(ctx context.Context, userID uint, date time.Time, foodEntryID uint) (*models.NutritionEntry, error) {
	entry, err := s.store.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errvalues.ErrEntryNotFound
	}

	found := false
	for i := range entry.Meals {
		meal := &entry.Meals[i]
		kept := meal.Foods[:0]
		for _, f := range meal.Foods {
			if f.ID == foodEntryID {
				found = true
				continue
			}
			kept = append(kept, f)
		}
		if len(kept) != len(meal.Foods) {
			meal.Foods = kept
			rebuildMealTotals(meal)
		}
	}
	if !found {
		return nil, errvalues.ErrEntryNotFound
	}

	rebuildEntryTotals(entry)
	if _, err := s.store.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.notifyDay(entry)
	return entry, nil
}

// GetEntry returns the user's entry for the calendar day, or
// (nil, nil) when nothing has been logged.
func (s *DiaryService) GetEntry(ctx context.Context, userID uint, date time.Time) (*models.NutritionEntry, error) {
	return s.store.GetByDate(ctx, userID, date)
}

func (s *DiaryService) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	return s.store.ListRange(ctx, userID, from, to)
}

// AddWater logs one water intake event and keeps the day entry's
// WaterIntake equal to the sum of the day's water entries.
func (s *DiaryService) AddWater(ctx context.Context, userID uint, amount float64, at time.Time) (*models.NutritionEntry, error) {
	if amount <= 0 {
		return nil, errvalues.ErrInvalidAmount
	}
	if _, err := s.water.Add(ctx, &models.WaterEntry{UserID: userID, Amount: amount, LoggedAt: at}); err != nil {
		return nil, err
	}
	return s.rebuildWater(ctx, userID, at)
}

// RemoveWater deletes one water event and re-derives the day total.
func (s *DiaryService) RemoveWater(ctx context.Context, userID, entryID uint) (*models.NutritionEntry, error) {
	we, err := s.water.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.water.Delete(ctx, userID, entryID); err != nil {
		return nil, err
	}
	return s.rebuildWater(ctx, userID, we.LoggedAt)
}

func (s *DiaryService) ListWater(ctx context.Context, userID uint, date time.Time) ([]models.WaterEntry, error) {
	return s.water.ListByDate(ctx, userID, date)
}

// rebuildWater folds the day's water entries into the day entry,
// creating the entry when water is the first thing logged that day.
func (s *DiaryService) rebuildWater(ctx context.Context, userID uint, date time.Time) (*models.NutritionEntry, error) {
	entries, err := s.water.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	entry, err := s.store.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.NutritionEntry{UserID: userID, Date: dayStart(date)}
	}
	entry.WaterIntake = total

	if _, err := s.store.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.notifyDay(entry)
	return entry, nil
}

// Totals are always a full fold over the current child list, never a
// delta adjustment, so recomputing N times equals recomputing once.

func rebuildMealTotals(meal *models.Meal) {
	meal.TotalCalories = sumFoodCalories(meal.Foods)
	meal.TotalMacros = sumFoodMacros(meal.Foods)
}

func rebuildEntryTotals(entry *models.NutritionEntry) {
	entry.TotalCalories = sumMealCalories(entry.Meals)
	entry.Macros = sumMealMacros(entry.Meals)
}

func (s *DiaryService) notifyDay(entry *models.NutritionEntry) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastDaySummary(entry.UserID, DaySummary{
		Date:          dayStart(entry.Date).Format("2006-01-02"),
		TotalCalories: entry.TotalCalories,
		Macros:        entry.Macros,
		WaterIntake:   entry.WaterIntake,
	})
}
