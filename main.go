package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		LogWarning("Error loading .env file: %v", err)
	}

	InitLogger()
	defer CloseLogger()

	LogInfo("Starting Steam Hour Farm Service")

	InitProxy()

	if err := InitHistoryDB(); err != nil {
		LogWarning("Failed to initialize history database: %v", err)
		LogInfo("Continuing without farming history")
	} else {
		defer CloseHistoryDB()
	}

	manager := NewSteamClientManager(NewSteamSession)
	server := NewAPIServer(manager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	gin.SetMode(gin.ReleaseMode)

	LogInfo("Starting HTTP server on :%s", port)
	if err := server.Router().Run(":" + port); err != nil {
		LogError("Failed to start HTTP server: %v", err)
		os.Exit(1)
	}
}
