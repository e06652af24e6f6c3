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

// PaymentReadModel represents the read model for payments
type PaymentReadModel struct {
	ID          string    `bson:"_id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"booking_id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	OrderCode   int64     `bson:"order_code" json:"order_code"`
	Amount      int       `bson:"amount" json:"amount"`
	Description string    `bson:"description" json:"description"`
	CheckoutUrl string    `bson:"checkout_url" json:"checkout_url"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ProviderEarnings summarizes paid amounts for a provider
type ProviderEarnings struct {
	ProviderID   string `bson:"_id" json:"provider_id"`
	TotalEarned  int64  `bson:"total_earned" json:"total_earned"`
	PaymentCount int64  `bson:"payment_count" json:"payment_count"`
}

// MongoPaymentProjection maintains the payment read model in MongoDB
type MongoPaymentProjection struct {
	collection *mongo.Collection
}

// NewMongoPaymentProjection creates a new MongoDB payment projection
func NewMongoPaymentProjection(db *mongo.Database) *MongoPaymentProjection {
	collection := db.Collection("payment_views")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "order_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: failed to create payment indexes: %v", err)
	}

	return &MongoPaymentProjection{
		collection: collection,
	}
}

// GetByID retrieves a payment by ID
func (p *MongoPaymentProjection) GetByID(ctx context.Context, id string) (*PaymentReadModel, error) {
	var payment PaymentReadModel
	err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("payment not found: %s", id)
		}
		return nil, err
	}
	return &payment, nil
}

// GetByOrderCode retrieves a payment by gateway order code
func (p *MongoPaymentProjection) GetByOrderCode(ctx context.Context, orderCode int64) (*PaymentReadModel, error) {
	var payment PaymentReadModel
	err := p.collection.FindOne(ctx, bson.M{"order_code": orderCode}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("payment not found for order code %d", orderCode)
		}
		return nil, err
	}
	return &payment, nil
}

// GetByBookingID retrieves payments attached to a booking
func (p *MongoPaymentProjection) GetByBookingID(ctx context.Context, bookingID string) ([]PaymentReadModel, error) {
	return p.find(ctx, bson.M{"booking_id": bookingID}, 0, 0)
}

// GetByCustomerID retrieves payments made by a customer
func (p *MongoPaymentProjection) GetByCustomerID(ctx context.Context, customerID string, offset, limit int) ([]PaymentReadModel, error) {
	return p.find(ctx, bson.M{"customer_id": customerID}, offset, limit)
}

// GetProviderEarnings aggregates paid amounts for a provider
func (p *MongoPaymentProjection) GetProviderEarnings(ctx context.Context, providerID string) (*ProviderEarnings, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"provider_id": providerID, "status": "PAID"}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$provider_id",
			"total_earned":  bson.M{"$sum": "$amount"},
			"payment_count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := p.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate provider earnings: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var earnings ProviderEarnings
		if err := cursor.Decode(&earnings); err != nil {
			return nil, err
		}
		return &earnings, nil
	}

	return &ProviderEarnings{ProviderID: providerID}, cursor.Err()
}

// TotalRevenue sums all paid amounts across the marketplace
func (p *MongoPaymentProjection) TotalRevenue(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": "PAID"}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := p.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, err
		}
		return row.Total, nil
	}

	return 0, cursor.Err()
}

func (p *MongoPaymentProjection) find(ctx context.Context, filter bson.M, offset, limit int) ([]PaymentReadModel, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := p.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []PaymentReadModel
	for cursor.Next(ctx) {
		var payment PaymentReadModel
		if err := cursor.Decode(&payment); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, cursor.Err()
}

// HandlePaymentCreated handles PaymentCreated event
func (p *MongoPaymentProjection) HandlePaymentCreated(ctx context.Context, evt event.PaymentCreated) error {
	payment := PaymentReadModel{
		ID:          evt.PaymentID,
		BookingID:   evt.BookingID,
		CustomerID:  evt.CustomerID,
		ProviderID:  evt.ProviderID,
		OrderCode:   evt.OrderCode,
		Amount:      evt.Amount,
		Description: evt.Description,
		CheckoutUrl: evt.CheckoutUrl,
		Status:      evt.Status,
		CreatedAt:   evt.Timestamp,
		UpdatedAt:   evt.Timestamp,
	}

	if _, err := p.collection.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// HandlePaymentCompleted handles PaymentCompleted event
func (p *MongoPaymentProjection) HandlePaymentCompleted(ctx context.Context, evt event.PaymentCompleted) error {
	update := bson.M{
		"$set": bson.M{
			"status":     "PAID",
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.PaymentID}, update); err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}

	return nil
}

// HandlePaymentCancelled handles PaymentCancelled event
func (p *MongoPaymentProjection) HandlePaymentCancelled(ctx context.Context, evt event.PaymentCancelled) error {
	update := bson.M{
		"$set": bson.M{
			"status":     "CANCELLED",
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.PaymentID}, update); err != nil {
		return fmt.Errorf("failed to cancel payment: %w", err)
	}

	return nil
}

// HandlePaymentExpired handles PaymentExpired event
func (p *MongoPaymentProjection) HandlePaymentExpired(ctx context.Context, evt event.PaymentExpired) error {
	update := bson.M{
		"$set": bson.M{
			"status":     "EXPIRED",
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.PaymentID}, update); err != nil {
		return fmt.Errorf("failed to expire payment: %w", err)
	}

	return nil
}
