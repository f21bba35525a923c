package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/elitk/elfitness/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

// GetStats serves the rolling-window nutrition summary. Values are
// rounded here for display; stored totals are never rounded.
func (h *StatsController) GetStats(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 || days > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats.AvgDailyCalories = round1(stats.AvgDailyCalories)
	stats.AvgDailyProtein = round1(stats.AvgDailyProtein)
	stats.AvgDailyCarbs = round1(stats.AvgDailyCarbs)
	stats.AvgDailyFat = round1(stats.AvgDailyFat)
	stats.AvgWaterIntake = round1(stats.AvgWaterIntake)
	stats.CalorieGoalProgress = round1(stats.CalorieGoalProgress)
	stats.MacroGoalProgress.Protein = round1(stats.MacroGoalProgress.Protein)
	stats.MacroGoalProgress.Carbs = round1(stats.MacroGoalProgress.Carbs)
	stats.MacroGoalProgress.Fat = round1(stats.MacroGoalProgress.Fat)

	c.JSON(http.StatusOK, stats)
}

// --- helpers ---

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
