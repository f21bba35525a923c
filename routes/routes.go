package routes

import (
	"github.com/elitk/elfitness/controllers"
	"github.com/elitk/elfitness/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Nutrition *controllers.NutritionController
	Foods     *controllers.FoodController
	Goals     *controllers.GoalController
	Stats     *controllers.StatsController
	Realtime  *controllers.RealtimeController
	Dev       *controllers.DevController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/foods/search", ctrl.Foods.Search)
		api.GET("/foods/custom", ctrl.Foods.ListCustom)
		api.POST("/foods/custom", ctrl.Foods.CreateCustom)
		api.GET("/foods/:id", ctrl.Foods.Get)

		api.GET("/nutrition/entry", ctrl.Nutrition.GetEntry)
		api.GET("/nutrition/entries", ctrl.Nutrition.ListEntries)
		api.POST("/nutrition/food", ctrl.Nutrition.AddFood)
		api.DELETE("/nutrition/food/:id", ctrl.Nutrition.RemoveFood)
		api.POST("/nutrition/water", ctrl.Nutrition.AddWater)
		api.GET("/nutrition/water", ctrl.Nutrition.ListWater)
		api.DELETE("/nutrition/water/:id", ctrl.Nutrition.RemoveWater)

		api.GET("/goals", ctrl.Goals.GetGoals)
		api.PUT("/goals", ctrl.Goals.UpdateGoals)

		api.GET("/stats", ctrl.Stats.GetStats)

		api.GET("/ws/summary", ctrl.Realtime.SummaryWS)

		api.POST("/dev/seed-foods", ctrl.Dev.SeedFoods)
	}

	return r
}
