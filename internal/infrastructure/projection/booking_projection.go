package projection

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingReadModel represents the read model for bookings
type BookingReadModel struct {
	ID          string              `bson:"_id" json:"id"`
	CustomerID  string              `bson:"customer_id" json:"customer_id"`
	ProviderID  string              `bson:"provider_id" json:"provider_id"`
	ServiceID   string              `bson:"service_id" json:"service_id"`
	Customer    BookingCustomerRead `bson:"customer" json:"customer"`
	Provider    BookingProviderRead `bson:"provider" json:"provider"`
	Service     BookedServiceRead   `bson:"service" json:"service"`
	ServiceDate time.Time           `bson:"service_date" json:"service_date"`
	BookingTime string              `bson:"booking_time" json:"booking_time"`
	Note        string              `bson:"note" json:"note"`
	Status      string              `bson:"status" json:"status"`
	IsActive    bool                `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

type BookingCustomerRead struct {
	UserID  string `bson:"user_id" json:"user_id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

type BookingProviderRead struct {
	ProviderID string `bson:"provider_id" json:"provider_id"`
	Name       string `bson:"name" json:"name"`
	City       string `bson:"city" json:"city"`
	Phone      string `bson:"phone" json:"phone"`
}

type BookedServiceRead struct {
	ServiceID string  `bson:"service_id" json:"service_id"`
	Title     string  `bson:"title" json:"title"`
	Category  string  `bson:"category" json:"category"`
	Price     float64 `bson:"price" json:"price"`
}

// MongoBookingProjection maintains the booking read model in MongoDB
type MongoBookingProjection struct {
	collection *mongo.Collection
}

// NewMongoBookingProjection creates a new MongoDB booking projection
func NewMongoBookingProjection(db *mongo.Database) *MongoBookingProjection {
	collection := db.Collection("booking_views")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "service_date", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: failed to create booking indexes: %v", err)
	}

	return &MongoBookingProjection{
		collection: collection,
	}
}

// GetByID retrieves a booking by ID
func (p *MongoBookingProjection) GetByID(ctx context.Context, id string) (*BookingReadModel, error) {
	var booking BookingReadModel
	err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking not found: %s", id)
		}
		return nil, err
	}
	return &booking, nil
}

// GetByCustomerID retrieves bookings by customer ID with pagination
func (p *MongoBookingProjection) GetByCustomerID(ctx context.Context, customerID string, offset, limit int) ([]BookingReadModel, error) {
	filter := bson.M{"customer_id": customerID}
	return p.find(ctx, filter, offset, limit)
}

// GetByProviderID retrieves bookings by provider ID with pagination
func (p *MongoBookingProjection) GetByProviderID(ctx context.Context, providerID string, offset, limit int) ([]BookingReadModel, error) {
	filter := bson.M{"provider_id": providerID}
	return p.find(ctx, filter, offset, limit)
}

// GetByDateRange retrieves bookings whose service date falls inside [from, to)
func (p *MongoBookingProjection) GetByDateRange(ctx context.Context, from, to time.Time, customerID, providerID string) ([]BookingReadModel, error) {
	filter := bson.M{
		"service_date": bson.M{"$gte": from, "$lt": to},
	}
	if customerID != "" {
		filter["customer_id"] = customerID
	}
	if providerID != "" {
		filter["provider_id"] = providerID
	}
	return p.find(ctx, filter, 0, 0)
}

// ListAll retrieves all bookings with pagination
func (p *MongoBookingProjection) ListAll(ctx context.Context, offset, limit int) ([]BookingReadModel, error) {
	return p.find(ctx, bson.M{}, offset, limit)
}

// CountByStatus counts bookings per lifecycle status
func (p *MongoBookingProjection) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := p.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Status] = row.Count
	}

	return counts, cursor.Err()
}

func (p *MongoBookingProjection) find(ctx context.Context, filter bson.M, offset, limit int) ([]BookingReadModel, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "service_date", Value: -1}})

	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := p.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []BookingReadModel
	for cursor.Next(ctx) {
		var booking BookingReadModel
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, cursor.Err()
}

// HandleBookingCreated handles BookingCreated event
func (p *MongoBookingProjection) HandleBookingCreated(ctx context.Context, evt event.BookingCreated) error {
	booking := BookingReadModel{
		ID:         evt.BookingID,
		CustomerID: evt.Customer.UserID,
		ProviderID: evt.Provider.ProviderID,
		ServiceID:  evt.Service.ServiceID,
		Customer: BookingCustomerRead{
			UserID:  evt.Customer.UserID,
			Name:    evt.Customer.Name,
			Email:   evt.Customer.Email,
			Phone:   evt.Customer.Phone,
			Address: evt.Customer.Address,
		},
		Provider: BookingProviderRead{
			ProviderID: evt.Provider.ProviderID,
			Name:       evt.Provider.Name,
			City:       evt.Provider.City,
			Phone:      evt.Provider.Phone,
		},
		Service: BookedServiceRead{
			ServiceID: evt.Service.ServiceID,
			Title:     evt.Service.Title,
			Category:  evt.Service.Category,
			Price:     evt.Service.Price,
		},
		ServiceDate: evt.ServiceDate,
		BookingTime: evt.BookingTime,
		Note:        evt.Note,
		Status:      evt.Status,
		IsActive:    true,
		CreatedAt:   evt.Timestamp,
		UpdatedAt:   evt.Timestamp,
	}

	if _, err := p.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// HandleBookingStatusChanged handles BookingStatusChanged event
func (p *MongoBookingProjection) HandleBookingStatusChanged(ctx context.Context, evt event.BookingStatusChanged) error {
	update := bson.M{
		"$set": bson.M{
			"status":     evt.NewStatus,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.BookingID}, update); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

// HandleBookingRescheduled handles BookingRescheduled event
func (p *MongoBookingProjection) HandleBookingRescheduled(ctx context.Context, evt event.BookingRescheduled) error {
	update := bson.M{
		"$set": bson.M{
			"service_date": evt.ServiceDate,
			"booking_time": evt.BookingTime,
			"updated_at":   evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.BookingID}, update); err != nil {
		return fmt.Errorf("failed to reschedule booking: %w", err)
	}

	return nil
}

// HandleBookingCompleted handles BookingCompleted event
func (p *MongoBookingProjection) HandleBookingCompleted(ctx context.Context, evt event.BookingCompleted) error {
	update := bson.M{
		"$set": bson.M{
			"status":     "completed",
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.BookingID}, update); err != nil {
		return fmt.Errorf("failed to complete booking: %w", err)
	}

	return nil
}

// HandleBookingCancelled handles BookingCancelled event
func (p *MongoBookingProjection) HandleBookingCancelled(ctx context.Context, evt event.BookingCancelled) error {
	update := bson.M{
		"$set": bson.M{
			"status":     "cancelled",
			"is_active":  false,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.BookingID}, update); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}
