package controllers

import (
	"errors"
	"net/http"

	"nutritrack/config"
	"nutritrack/services"
	"nutritrack/utils"

	"github.com/gin-gonic/gin"
)

// POST /food/add-analyzed
// Body: { foodItems, totalCalories?, mealType?, timezone?, imageBase64? }
func AddAnalyzedFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		FoodItems     []services.FoodItemRequest `json:"foodItems"`
		TotalCalories *float64                   `json:"totalCalories"`
		MealType      string                     `json:"mealType"`
		Timezone      string                     `json:"timezone"`
		ImageBase64   string                     `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Photo upload is best-effort: a failed upload shouldn't lose the log.
	photoURL := ""
	if body.ImageBase64 != "" {
		if url, err := utils.UploadMealPhoto(body.ImageBase64, uid); err == nil {
			photoURL = url
		}
	}

	foodSvc := services.NewFoodService(config.DB)
	result, err := foodSvc.AddAnalyzedFood(uid, body.Timezone, body.FoodItems, body.MealType, body.TotalCalories, photoURL)
	if err != nil {
		if errors.Is(err, services.ErrNoFoodItems) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": result})
}

// GET /food/daily-calories?date=YYYY-MM-DD&timezone=Asia/Colombo
func GetDailyCalories(c *gin.Context) {
	uid := c.GetUint("userID")

	summarySvc := services.NewSummaryService(config.DB)
	summary, err := summarySvc.Summarize(uid, c.Query("timezone"), c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// POST /food/analyze-image  { "imageBase64": "data:…" }
func AnalyzeFoodImage(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"imageBase64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	labels, err := vision.DetectFoodLabels(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Candidates only — the client confirms/edits before calling add-analyzed.
	candidates := make([]services.FoodItemRequest, 0, len(labels))
	for _, l := range labels {
		candidates = append(candidates, services.FoodItemRequest{Name: l, ServingSize: "100g"})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"candidates": candidates}})
}
