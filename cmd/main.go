package main

import (
	"nutritrack/config"
	"nutritrack/routes"
	"nutritrack/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
