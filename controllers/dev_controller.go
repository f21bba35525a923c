package controllers

import (
	"net/http"

	"github.com/elitk/elfitness/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Foods *services.FoodService
}

func NewDevController(foods *services.FoodService) *DevController {
	return &DevController{Foods: foods}
}

// SeedFoods loads the built-in food catalog. Idempotent: already-seeded
// items are skipped.
func (d *DevController) SeedFoods(c *gin.Context) {
	created, err := d.Foods.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "created": created})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
