package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the route handlers wired up in main.
type HandlerBundle struct {
	// Chat endpoints.
	ChatHandler         gin.HandlerFunc
	GetHistoryHandler   gin.HandlerFunc
	ResetSessionHandler gin.HandlerFunc

	// Knowledge base endpoints.
	UploadDocumentHandler gin.HandlerFunc
	KnowledgeStatsHandler gin.HandlerFunc
	KnowledgeResetHandler gin.HandlerFunc

	// Booking dashboard endpoints.
	ListBookingsHandler  gin.HandlerFunc
	BookingStatsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
}
