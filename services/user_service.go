package services

import (
	"errors"

	"github.com/elitk/elfitness/config"
	"github.com/elitk/elfitness/models"
	"github.com/elitk/elfitness/utils"
)

type ProfileInput struct {
	DisplayName string  `json:"display_name"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	profile := map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"height":       user.Height,
		"weight":       user.Weight,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}

	return config.DB.Save(&user).Error
}
