package routes

import (
	"net/http"
	"time"

	"neobook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/chat/history/:sessionID", hb.GetHistoryHandler)
		api.DELETE("/sessions/:sessionID", hb.ResetSessionHandler)
	}
}

// RegisterKnowledgeRoutes registers knowledge base ingestion and admin endpoints.
func RegisterKnowledgeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/knowledge")
	{
		api.POST("/documents", hb.UploadDocumentHandler)
		api.GET("/stats", hb.KnowledgeStatsHandler)
		api.POST("/reset", hb.KnowledgeResetHandler)
	}
}

// RegisterBookingRoutes registers the booking dashboard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/stats", hb.BookingStatsHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm NeoBook"})
	})
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterKnowledgeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
