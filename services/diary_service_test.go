package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"
	"github.com/elitk/elfitness/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID uint = 7

var testFood = models.FoodItem{
	FoodID:             "food-oats",
	Name:               "Oatmeal",
	ServingSize:        40,
	ServingUnit:        "g",
	CaloriesPerServing: 200,
	Macros:             models.MacroNutrients{Protein: 10, Carbs: 20, Fat: 5, Fiber: 2, Sugar: 1},
}

func newDiary() (*services.DiaryService, *fakeNutritionStore, *fakeWaterStore) {
	store := newFakeNutritionStore()
	water := &fakeWaterStore{}
	diary := services.NewDiaryService(store, newFakeFoodStore(testFood), water, nil)
	return diary, store, water
}

func TestAddFoodCreatesEntryAndMeal(t *testing.T) {
	diary, store, _ := newDiary()
	ctx := context.Background()

	entry, err := diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, 1.5, models.MealBreakfast)
	require.NoError(t, err)
	require.NotNil(t, entry)

	require.Len(t, entry.Meals, 1)
	meal := entry.Meals[0]
	assert.Equal(t, models.MealBreakfast, meal.Type)
	require.Len(t, meal.Foods, 1)

	food := meal.Foods[0]
	assert.Equal(t, testFood.FoodID, food.FoodID)
	assert.Equal(t, "Oatmeal", food.FoodName)
	assert.Equal(t, 1.5, food.Servings)
	assert.Equal(t, 300.0, food.Calories)
	assert.Equal(t, models.MacroNutrients{Protein: 15, Carbs: 30, Fat: 7.5, Fiber: 3, Sugar: 1.5}, food.Macros)

	// meal and day totals equal the single entry's values exactly
	assert.Equal(t, 300.0, meal.TotalCalories)
	assert.Equal(t, food.Macros, meal.TotalMacros)
	assert.Equal(t, 300.0, entry.TotalCalories)
	assert.Equal(t, food.Macros, entry.Macros)
	assert.Equal(t, 0.0, entry.WaterIntake)

	assert.Equal(t, 1, store.saves)
}

func TestAddFoodAppendsNotDeduplicates(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	day := time.Now()

	_, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 2, models.MealLunch)
	require.NoError(t, err)
	entry, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 2, models.MealLunch)
	require.NoError(t, err)

	require.Len(t, entry.Meals, 1)
	assert.Len(t, entry.Meals[0].Foods, 2, "same food logged twice stays two entries")
	assert.Equal(t, 800.0, entry.Meals[0].TotalCalories)
	assert.Equal(t, 800.0, entry.TotalCalories)
	assert.Equal(t, models.MacroNutrients{Protein: 40, Carbs: 80, Fat: 20, Fiber: 8, Sugar: 4}, entry.Macros)
}

func TestAddFoodAcrossMealSlots(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	day := time.Now()

	_, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 1, models.MealBreakfast)
	require.NoError(t, err)
	entry, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 1, models.MealDinner)
	require.NoError(t, err)

	require.Len(t, entry.Meals, 2)
	assert.Equal(t, 400.0, entry.TotalCalories)
	assert.Equal(t, models.MacroNutrients{Protein: 20, Carbs: 40, Fat: 10, Fiber: 4, Sugar: 2}, entry.Macros)
}

func TestAddFoodValidation(t *testing.T) {
	diary, store, _ := newDiary()
	ctx := context.Background()

	_, err := diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, 0, models.MealBreakfast)
	assert.ErrorIs(t, err, errvalues.ErrInvalidServings)

	_, err = diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, -1, models.MealBreakfast)
	assert.ErrorIs(t, err, errvalues.ErrInvalidServings)

	_, err = diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, 1, models.MealType("brunch"))
	assert.ErrorIs(t, err, errvalues.ErrUnknownMealType)

	_, err = diary.AddFood(ctx, testUserID, time.Now(), "nope", 1, models.MealBreakfast)
	assert.ErrorIs(t, err, errvalues.ErrFoodNotFound)

	assert.Equal(t, 0, store.saves, "rejected input must not touch the store")
}

func TestAddFoodPropagatesStoreErrors(t *testing.T) {
	diary, store, _ := newDiary()
	ctx := context.Background()

	store.failSave = true
	_, err := diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, 1, models.MealBreakfast)
	assert.ErrorIs(t, err, errStore)

	store.failSave = false
	store.failGet = true
	_, err = diary.AddFood(ctx, testUserID, time.Now(), testFood.FoodID, 1, models.MealBreakfast)
	assert.ErrorIs(t, err, errStore)
}

func TestRemoveFoodRebuildsTotals(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	day := time.Now()

	_, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 1, models.MealBreakfast)
	require.NoError(t, err)
	entry, err := diary.AddFood(ctx, testUserID, day, testFood.FoodID, 2, models.MealBreakfast)
	require.NoError(t, err)
	require.Len(t, entry.Meals[0].Foods, 2)

	removeID := entry.Meals[0].Foods[1].ID // the 2-serving log
	entry, err = diary.RemoveFood(ctx, testUserID, day, removeID)
	require.NoError(t, err)

	require.Len(t, entry.Meals[0].Foods, 1)
	assert.Equal(t, 200.0, entry.Meals[0].TotalCalories)
	assert.Equal(t, 200.0, entry.TotalCalories)
	assert.Equal(t, testFood.Macros, entry.Macros)
}

func TestRemoveFoodUnknownID(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	day := time.Now()

	_, err := diary.RemoveFood(ctx, testUserID, day, 1)
	assert.ErrorIs(t, err, errvalues.ErrEntryNotFound, "no entry for the day")

	_, err = diary.AddFood(ctx, testUserID, day, testFood.FoodID, 1, models.MealBreakfast)
	require.NoError(t, err)
	_, err = diary.RemoveFood(ctx, testUserID, day, 9999)
	assert.ErrorIs(t, err, errvalues.ErrEntryNotFound)
}

func TestAddWaterCreatesAndAccumulates(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	now := time.Now()

	entry, err := diary.AddWater(ctx, testUserID, 250, now)
	require.NoError(t, err)
	assert.Equal(t, 250.0, entry.WaterIntake)
	assert.Empty(t, entry.Meals, "water-first day starts with no meals")
	assert.Equal(t, 0.0, entry.TotalCalories)

	entry, err = diary.AddWater(ctx, testUserID, 500, now)
	require.NoError(t, err)
	assert.Equal(t, 750.0, entry.WaterIntake, "day total is the fold over all water events")
}

func TestAddWaterValidation(t *testing.T) {
	diary, store, _ := newDiary()

	_, err := diary.AddWater(context.Background(), testUserID, 0, time.Now())
	assert.ErrorIs(t, err, errvalues.ErrInvalidAmount)
	assert.Equal(t, 0, store.saves)
}

func TestRemoveWaterRebuildsDayTotal(t *testing.T) {
	diary, _, water := newDiary()
	ctx := context.Background()
	now := time.Now()

	_, err := diary.AddWater(ctx, testUserID, 250, now)
	require.NoError(t, err)
	_, err = diary.AddWater(ctx, testUserID, 300, now)
	require.NoError(t, err)
	require.Len(t, water.entries, 2)

	entry, err := diary.RemoveWater(ctx, testUserID, water.entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, entry.WaterIntake)

	_, err = diary.RemoveWater(ctx, testUserID, 424242)
	assert.ErrorIs(t, err, errvalues.ErrWaterNotFound)
}

func TestFoodLogDoesNotTouchWaterIntake(t *testing.T) {
	diary, _, _ := newDiary()
	ctx := context.Background()
	now := time.Now()

	_, err := diary.AddWater(ctx, testUserID, 400, now)
	require.NoError(t, err)
	entry, err := diary.AddFood(ctx, testUserID, now, testFood.FoodID, 1, models.MealSnack)
	require.NoError(t, err)

	assert.Equal(t, 400.0, entry.WaterIntake)
	assert.Equal(t, 200.0, entry.TotalCalories)
}
