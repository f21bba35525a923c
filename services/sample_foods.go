package services

import "github.com/elitk/elfitness/models"

// Built-in staples so a fresh install has something to search before any
// custom foods exist. Seeded via FoodService.Seed.
var sampleFoods = []models.FoodItem{
	{
		FoodID: "sample-chicken-breast", Name: "Chicken Breast", Brand: "Generic",
		ServingSize: 100, ServingUnit: "g", CaloriesPerServing: 165,
		Macros:   models.MacroNutrients{Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0},
		Category: "Meat & Seafood",
	},
	{
		FoodID: "sample-brown-rice", Name: "Brown Rice", Brand: "Generic",
		ServingSize: 100, ServingUnit: "g", CaloriesPerServing: 111,
		Macros:   models.MacroNutrients{Protein: 2.6, Carbs: 23, Fat: 0.9, Fiber: 1.8, Sugar: 0.4},
		Category: "Grains",
	},
	{
		FoodID: "sample-broccoli", Name: "Broccoli", Brand: "Generic",
		ServingSize: 100, ServingUnit: "g", CaloriesPerServing: 34,
		Macros:   models.MacroNutrients{Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Sugar: 1.5},
		Category: "Vegetables",
	},
	{
		FoodID: "sample-salmon-fillet", Name: "Salmon Fillet", Brand: "Generic",
		ServingSize: 100, ServingUnit: "g", CaloriesPerServing: 208,
		Macros:   models.MacroNutrients{Protein: 25.4, Carbs: 0, Fat: 12.4, Fiber: 0, Sugar: 0},
		Category: "Meat & Seafood",
	},
	{
		FoodID: "sample-greek-yogurt", Name: "Greek Yogurt", Brand: "Fage",
		ServingSize: 170, ServingUnit: "g", CaloriesPerServing: 100,
		Macros:   models.MacroNutrients{Protein: 18, Carbs: 6, Fat: 0, Fiber: 0, Sugar: 6},
		Category: "Dairy",
	},
	{
		FoodID: "sample-banana", Name: "Banana", Brand: "Generic",
		ServingSize: 1, ServingUnit: "medium", CaloriesPerServing: 105,
		Macros:   models.MacroNutrients{Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, Sugar: 14.4},
		Category: "Fruits",
	},
	{
		FoodID: "sample-almonds", Name: "Almonds", Brand: "Generic",
		ServingSize: 28, ServingUnit: "g", CaloriesPerServing: 164,
		Macros:   models.MacroNutrients{Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5, Sugar: 1.2},
		Category: "Nuts & Seeds",
	},
	{
		FoodID: "sample-oatmeal", Name: "Oatmeal", Brand: "Quaker",
		ServingSize: 40, ServingUnit: "g", CaloriesPerServing: 150,
		Macros:   models.MacroNutrients{Protein: 5, Carbs: 27, Fat: 3, Fiber: 4, Sugar: 1},
		Category: "Grains",
	},
	{
		FoodID: "sample-avocado", Name: "Avocado", Brand: "Generic",
		ServingSize: 100, ServingUnit: "g", CaloriesPerServing: 160,
		Macros:   models.MacroNutrients{Protein: 2, Carbs: 9, Fat: 15, Fiber: 7, Sugar: 0.7},
		Category: "Fruits",
	},
	{
		FoodID: "sample-whole-wheat-bread", Name: "Whole Wheat Bread", Brand: "Generic",
		ServingSize: 1, ServingUnit: "slice", CaloriesPerServing: 81,
		Macros:   models.MacroNutrients{Protein: 3.6, Carbs: 13.8, Fat: 1.1, Fiber: 1.9, Sugar: 1.4},
		Category: "Grains",
	},
}
