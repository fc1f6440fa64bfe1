package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"neobook/database"
	"neobook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	bookingsCollection  = "bookings"
	customersCollection = "customers"
)

type mongoBookingRepo struct {
	bookings  *mongo.Collection
	customers *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		bookings:  database.Collection(bookingsCollection),
		customers: database.Collection(customersCollection),
	}
}

func (r *mongoBookingRepo) SaveBooking(ctx context.Context, name, email, phone, bookingType, date, timeOfDay string) models.BookingResult {
	customerID, err := r.upsertCustomer(ctx, name, email, phone)
	if err != nil {
		return models.BookingResult{Success: false, Message: fmt.Sprintf("Error saving booking: %v", err)}
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		BookingType: bookingType,
		Date:        date,
		Time:        timeOfDay,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}
	if _, err := r.bookings.InsertOne(ctx, booking); err != nil {
		return models.BookingResult{Success: false, Message: fmt.Sprintf("Error saving booking: %v", err)}
	}

	return models.BookingResult{
		Success: true,
		ID:      booking.ID,
		Message: fmt.Sprintf("Booking saved successfully! Booking ID: %s", booking.ID),
	}
}

// upsertCustomer finds the customer by email or creates one, returning its ID.
func (r *mongoBookingRepo) upsertCustomer(ctx context.Context, name, email, phone string) (string, error) {
	var existing models.Customer
	err := r.customers.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return existing.ID, nil
	}
	if err != mongo.ErrNoDocuments {
		return "", err
	}

	customer := models.Customer{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if _, err := r.customers.InsertOne(ctx, customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (r *mongoBookingRepo) CheckAvailability(ctx context.Context, date, timeOfDay string) (bool, error) {
	count, err := r.bookings.CountDocuments(ctx, bson.M{
		"date":   date,
		"time":   timeOfDay,
		"status": models.BookingStatusConfirmed,
	})
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *mongoBookingRepo) CancelBooking(ctx context.Context, id string) (string, error) {
	res, err := r.bookings.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}},
	)
	if err != nil {
		return "", fmt.Errorf("cancel booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return "Booking not found.", nil
	}
	return fmt.Sprintf("Booking %s cancelled successfully.", id), nil
}

func (r *mongoBookingRepo) ListBookings(ctx context.Context, status string) ([]models.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) Stats(ctx context.Context) (models.BookingStats, error) {
	var stats models.BookingStats
	var err error

	if stats.Total, err = r.bookings.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Confirmed, err = r.bookings.CountDocuments(ctx, bson.M{"status": models.BookingStatusConfirmed}); err != nil {
		return stats, err
	}
	if stats.Cancelled, err = r.bookings.CountDocuments(ctx, bson.M{"status": models.BookingStatusCancelled}); err != nil {
		return stats, err
	}
	if stats.Customers, err = r.customers.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	return stats, nil
}
