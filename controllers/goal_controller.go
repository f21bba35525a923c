package controllers

import (
	"net/http"

	"github.com/elitk/elfitness/models"
	"github.com/elitk/elfitness/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// GetGoals returns the active goal set plus today's consumption against it.
func (h *GoalController) GetGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal, progress, err := h.Goals.TodayProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

type GoalsInput struct {
	DailyCalories float64 `json:"daily_calories" binding:"required,gt=0"`
	Protein       float64 `json:"protein" binding:"required,gt=0"`
	Carbs         float64 `json:"carbs" binding:"required,gt=0"`
	Fat           float64 `json:"fat" binding:"required,gt=0"`
	Fiber         float64 `json:"fiber" binding:"gte=0"`
	Sugar         float64 `json:"sugar" binding:"gte=0"`
	WaterIntake   float64 `json:"water_intake" binding:"gte=0"` // ml
}

// UpdateGoals saves a new goal set; the previous active set is
// deactivated, not deleted.
func (h *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := &models.NutritionGoal{
		UserID:        userID,
		DailyCalories: input.DailyCalories,
		MacroTargets: models.MacroNutrients{
			Protein: input.Protein,
			Carbs:   input.Carbs,
			Fat:     input.Fat,
			Fiber:   input.Fiber,
			Sugar:   input.Sugar,
		},
		WaterIntake: input.WaterIntake,
	}
	id, err := h.Goals.Save(c.Request.Context(), goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
