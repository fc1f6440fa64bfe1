package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Customer is a booking contact, keyed by email.
type Customer struct {
	ID    string `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Booking is a committed reservation.
type Booking struct {
	ID          string    `bson:"_id" json:"id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	BookingType string    `bson:"booking_type" json:"booking_type"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	ExtraInfo   string    `bson:"extra_info,omitempty" json:"extra_info,omitempty"`
}

// BookingResult is the outcome of a save attempt.
type BookingResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// BookingStats summarizes bookings for the dashboard endpoints.
type BookingStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Customers int64 `json:"customers"`
}
