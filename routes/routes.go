package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"guidely/handlers"
	"guidely/utils"
)

// RegisterWebhookRoutes binds the fulfillment endpoint. The dialog platform
// is configured with the root path, /webhook exists for setups that route
// through a path prefix.
func RegisterWebhookRoutes(r *gin.Engine, webhook *handlers.WebhookHandler) {
	r.POST("/", webhook.HandleTurn)
	r.POST("/webhook", webhook.HandleTurn)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, webhook *handlers.WebhookHandler) {
	// The dialog platform's console and test integrations call from browser
	// contexts, so CORS stays fully open.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWebhookRoutes(r, webhook)
}
