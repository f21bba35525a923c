package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"
	"github.com/elitk/elfitness/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Diary *services.DiaryService
}

func NewNutritionController(diary *services.DiaryService) *NutritionController {
	return &NutritionController{Diary: diary}
}

// GetEntry returns the day's entry, or an empty scaffold when nothing
// has been logged so dashboards always have something to render.
func (h *NutritionController) GetEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := dateQuery(c, "date", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	entry, err := h.Diary.GetEntry(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entry == nil {
		entry = &models.NutritionEntry{UserID: userID, Date: date, Meals: []models.Meal{}}
	}
	c.JSON(http.StatusOK, entry)
}

type AddFoodInput struct {
	FoodID   string  `json:"food_id" binding:"required"`
	Servings float64 `json:"servings" binding:"required,gt=0"`
	MealType string  `json:"meal_type" binding:"required,mealtype"`
	Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
}

func (h *NutritionController) AddFood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var input AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now()
	if input.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
			return
		}
	}

	entry, err := h.Diary.AddFood(c.Request.Context(), userID, date, input.FoodID, input.Servings, models.MealType(input.MealType))
	if err != nil {
		respondDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *NutritionController) RemoveFood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	foodEntryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food entry id"})
		return
	}
	date, err := dateQuery(c, "date", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	entry, err := h.Diary.RemoveFood(c.Request.Context(), userID, date, uint(foodEntryID))
	if err != nil {
		respondDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *NutritionController) ListEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	now := time.Now()
	from, err := dateQuery(c, "from", now.AddDate(0, 0, -7))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := dateQuery(c, "to", now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	entries, err := h.Diary.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type AddWaterInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"` // ml
}

func (h *NutritionController) AddWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var input AddWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Diary.AddWater(c.Request.Context(), userID, input.Amount, time.Now())
	if err != nil {
		respondDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *NutritionController) ListWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := dateQuery(c, "date", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	entries, err := h.Diary.ListWater(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *NutritionController) RemoveWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid water entry id"})
		return
	}

	entry, err := h.Diary.RemoveWater(c.Request.Context(), userID, uint(entryID))
	if err != nil {
		respondDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// --- helpers ---

func respondDiaryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errvalues.ErrInvalidServings),
		errors.Is(err, errvalues.ErrUnknownMealType),
		errors.Is(err, errvalues.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errvalues.ErrFoodNotFound),
		errors.Is(err, errvalues.ErrEntryNotFound),
		errors.Is(err, errvalues.ErrWaterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func dateQuery(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseInLocation("2006-01-02", v, time.Local)
}
