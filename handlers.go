package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIServer exposes the session manager over HTTP for the dashboard.
type APIServer struct {
	manager *SteamClientManager

	// swapped in tests
	resolveGameNames func(ctx context.Context, gameIDs []int) map[int]string
}

// NewAPIServer wires the manager to the HTTP facade.
func NewAPIServer(manager *SteamClientManager) *APIServer {
	return &APIServer{
		manager:          manager,
		resolveGameNames: FetchGameNames,
	}
}

// Router builds the gin engine with all routes registered.
func (s *APIServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())

	router.POST("/client", s.handleCreateClient)
	router.DELETE("/client", s.handleDeleteClient)
	router.GET("/clients", s.handleGetAllClients)
	router.GET("/client/:id", s.handleGetClient)
	router.POST("/start-bot", s.handleStartBot)
	router.POST("/stop-bot", s.handleStopBot)

	router.GET("/health-check", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func (s *APIServer) handleCreateClient(c *gin.Context) {
	clientID := s.manager.CreateClient()
	c.JSON(http.StatusOK, gin.H{"clientId": clientID})
}

func (s *APIServer) handleDeleteClient(c *gin.Context) {
	var req ClientIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clientId."})
		return
	}

	if !s.manager.DestroyClient(req.ClientID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrClientNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully."})
}

func (s *APIServer) handleGetAllClients(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.GetAllClients(c.Request.Context()))
}

func (s *APIServer) handleGetClient(c *gin.Context) {
	client, ok := s.manager.GetClient(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrClientNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, client.GetInfo(c.Request.Context()))
}

func (s *APIServer) handleStartBot(c *gin.Context) {
	var req StartBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clientId, username, password, OTP, or Games ID."})
		return
	}
	if req.ClientID == "" || req.Username == "" || req.Password == "" || req.OTP == "" || len(req.GamesID) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clientId, username, password, OTP, or Games ID."})
		return
	}

	client, ok := s.manager.GetClient(req.ClientID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrClientNotFound.Error()})
		return
	}

	// Enforced before any name resolution or session work.
	if len(req.GamesID) > MaxFarmGames {
		LogWarning("Exceeded the limit of %d games (%d provided). Logging off...", MaxFarmGames, len(req.GamesID))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Exceeded the limit of %d games (%d provided).", MaxFarmGames, len(req.GamesID)),
		})
		return
	}

	LogInfo("Initializing %d games...", len(req.GamesID))
	games := s.resolveGameNames(c.Request.Context(), req.GamesID)

	creds := LogOnCredentials{
		Username: req.Username,
		Password: req.Password,
		OTP:      req.OTP,
	}
	if err := client.Start(c.Request.Context(), creds, games); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bot started successfully."})
}

func (s *APIServer) handleStopBot(c *gin.Context) {
	var req ClientIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing clientId."})
		return
	}

	client, ok := s.manager.GetClient(req.ClientID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrClientNotFound.Error()})
		return
	}

	if !client.Stop() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrNotRunning.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bot stopped successfully."})
}
