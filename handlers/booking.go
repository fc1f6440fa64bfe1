package handlers

import (
	"net/http"

	bookingRepo "neobook/database/repository/booking"
	"neobook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the dashboard views over committed bookings.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ListBookings returns bookings, optionally filtered by ?status=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	bookings, err := h.Repo.ListBookings(c.Request.Context(), status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetStats returns booking and customer counts.
func (h *BookingHandler) GetStats(c *gin.Context) {
	stats, err := h.Repo.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CancelBooking marks a booking cancelled by ID.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	message, err := h.Repo.CancelBooking(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": message})
}
