package services

import "github.com/elitk/elfitness/models"

// Pure macro-vector arithmetic. Totals everywhere in this package are
// rebuilt with these folds instead of patched with per-entry deltas, so
// recomputing from the same source list always yields the same result.

// ScaleMacros multiplies every field by factor. Fractional factors
// (e.g. 0.5 servings) are fine; nothing is rounded here — rounding is a
// presentation concern only.
func ScaleMacros(m models.MacroNutrients, factor float64) models.MacroNutrients {
	return models.MacroNutrients{
		Protein: m.Protein * factor,
		Carbs:   m.Carbs * factor,
		Fat:     m.Fat * factor,
		Fiber:   m.Fiber * factor,
		Sugar:   m.Sugar * factor,
	}
}

// SumMacros folds element-wise starting from the zero vector. An empty
// input yields the zero vector.
func SumMacros(vectors []models.MacroNutrients) models.MacroNutrients {
	var total models.MacroNutrients
	for _, v := range vectors {
		total.Protein += v.Protein
		total.Carbs += v.Carbs
		total.Fat += v.Fat
		total.Fiber += v.Fiber
		total.Sugar += v.Sugar
	}
	return total
}

func sumFoodMacros(foods []models.FoodLogEntry) models.MacroNutrients {
	vectors := make([]models.MacroNutrients, 0, len(foods))
	for _, f := range foods {
		vectors = append(vectors, f.Macros)
	}
	return SumMacros(vectors)
}

func sumFoodCalories(foods []models.FoodLogEntry) float64 {
	var total float64
	for _, f := range foods {
		total += f.Calories
	}
	return total
}

func sumMealMacros(meals []models.Meal) models.MacroNutrients {
	vectors := make([]models.MacroNutrients, 0, len(meals))
	for _, m := range meals {
		vectors = append(vectors, m.TotalMacros)
	}
	return SumMacros(vectors)
}

func sumMealCalories(meals []models.Meal) float64 {
	var total float64
	for _, m := range meals {
		total += m.TotalCalories
	}
	return total
}
