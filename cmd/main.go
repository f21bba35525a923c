package main

import (
	"github.com/elitk/elfitness/config"
	"github.com/elitk/elfitness/controllers"
	"github.com/elitk/elfitness/repository"
	"github.com/elitk/elfitness/routes"
	"github.com/elitk/elfitness/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	services.InitValidator()

	nutritionRepo := repository.NewNutritionRepo(config.DB)
	foodRepo := repository.NewFoodRepo(config.DB)
	goalRepo := repository.NewGoalRepo(config.DB)
	waterRepo := repository.NewWaterRepo(config.DB)

	hub := services.NewRealtimeHub()
	diarySvc := services.NewDiaryService(nutritionRepo, foodRepo, waterRepo, hub)
	foodSvc := services.NewFoodService(foodRepo)
	goalSvc := services.NewGoalService(goalRepo, nutritionRepo)
	statsSvc := services.NewStatsService(nutritionRepo, goalRepo)

	r := routes.SetupRouter(routes.Controllers{
		Nutrition: controllers.NewNutritionController(diarySvc),
		Foods:     controllers.NewFoodController(foodSvc),
		Goals:     controllers.NewGoalController(goalSvc),
		Stats:     controllers.NewStatsController(statsSvc),
		Realtime:  controllers.NewRealtimeController(hub),
		Dev:       controllers.NewDevController(foodSvc),
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
