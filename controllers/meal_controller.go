package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"nutritrack/config"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

// GET /meals/daily?date=YYYY-MM-DD&timezone=Asia/Colombo
// Alternate path to the daily summary, with the day's meals attached.
func GetDailyMeals(c *gin.Context) {
	uid := c.GetUint("userID")
	tz := c.Query("timezone")
	date := c.Query("date")

	summarySvc := services.NewSummaryService(config.DB)
	summary, err := summarySvc.Summarize(uid, tz, date)
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	meals, err := summarySvc.MealsForDay(uid, tz, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"summary": summary,
		"meals":   meals,
	}})
}

// GET /meals?limit=20
func ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	meals, err := services.NewMealStore(config.DB).ListRecent(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": meals})
}
