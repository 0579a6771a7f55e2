package routes

import (
	"log"

	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Shared long-lived services
	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		// Push is optional in dev; everything else keeps working.
		log.Printf("push disabled: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/food/add-analyzed", controllers.AddAnalyzedFood)
		api.GET("/food/daily-calories", controllers.GetDailyCalories)
		api.POST("/food/analyze-image", controllers.AnalyzeFoodImage)

		api.GET("/meals/daily", controllers.GetDailyMeals)
		api.GET("/meals", controllers.ListMeals)

		api.POST("/activity/steps", controllers.SyncSteps)
		api.GET("/activity/steps", controllers.GetSteps)

		api.GET("/notifications", controllers.ListNotifications)
		api.POST("/notifications/toggle", controllers.ToggleNotifications)

		if push != nil {
			dc := controllers.NewDeviceController(push)
			api.POST("/devices/register", dc.Register)
		}

		rc := controllers.NewRealtimeController(hub)
		api.GET("/ws", rc.UpdatesWS)
	}

	return r
}
