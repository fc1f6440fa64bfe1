package bookingRepo

import (
	"context"

	"neobook/models"
)

// BookingRepository is the persistence boundary for bookings and customers.
type BookingRepository interface {
	// SaveBooking upserts the customer by email and inserts a confirmed
	// booking. The result message is user facing.
	SaveBooking(ctx context.Context, name, email, phone, bookingType, date, timeOfDay string) models.BookingResult

	// CheckAvailability reports whether the (date, time) slot is free of
	// confirmed bookings.
	CheckAvailability(ctx context.Context, date, timeOfDay string) (bool, error)

	// CancelBooking marks a booking cancelled and returns a status message.
	CancelBooking(ctx context.Context, id string) (string, error)

	ListBookings(ctx context.Context, status string) ([]models.Booking, error)
	Stats(ctx context.Context) (models.BookingStats, error)
}
