package controllers

import (
	"errors"
	"net/http"

	"nutritrack/config"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

// POST /activity/steps  { "steps": 8200, "timezone": "Asia/Colombo" }
func SyncSteps(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Steps    int    `json:"steps"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	log, err := services.NewStepService(config.DB).UpsertSteps(uid, body.Timezone, body.Steps)
	if err != nil {
		if errors.Is(err, services.ErrNegativeSteps) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}

// GET /activity/steps?date=YYYY-MM-DD&timezone=Asia/Colombo
func GetSteps(c *gin.Context) {
	uid := c.GetUint("userID")

	steps, dayKey, err := services.NewStepService(config.DB).GetSteps(uid, c.Query("timezone"), c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"date": dayKey, "steps": steps}})
}
