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

// ServiceReadModel represents the read model for catalog services
type ServiceReadModel struct {
	ID          string    `bson:"_id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	City        string    `bson:"city" json:"city"`
	ImageUrl    string    `bson:"image_url" json:"image_url"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// MongoServiceProjection maintains the service catalog read model in MongoDB
type MongoServiceProjection struct {
	collection *mongo.Collection
}

// NewMongoServiceProjection creates a new MongoDB service projection
func NewMongoServiceProjection(db *mongo.Database) *MongoServiceProjection {
	collection := db.Collection("service_views")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: failed to create service indexes: %v", err)
	}

	return &MongoServiceProjection{
		collection: collection,
	}
}

// GetByID retrieves a service by ID
func (p *MongoServiceProjection) GetByID(ctx context.Context, id string) (*ServiceReadModel, error) {
	var service ServiceReadModel
	err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service not found: %s", id)
		}
		return nil, err
	}
	return &service, nil
}

// GetByProviderID retrieves services offered by a provider
func (p *MongoServiceProjection) GetByProviderID(ctx context.Context, providerID string, offset, limit int) ([]ServiceReadModel, error) {
	return p.find(ctx, bson.M{"provider_id": providerID, "is_active": true}, offset, limit)
}

// Search retrieves active services filtered by category and city
func (p *MongoServiceProjection) Search(ctx context.Context, category, city string, offset, limit int) ([]ServiceReadModel, error) {
	filter := bson.M{"is_active": true}
	if category != "" {
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}
	return p.find(ctx, filter, offset, limit)
}

// ListAll retrieves all active services with pagination
func (p *MongoServiceProjection) ListAll(ctx context.Context, offset, limit int) ([]ServiceReadModel, error) {
	return p.find(ctx, bson.M{"is_active": true}, offset, limit)
}

// Count counts active services
func (p *MongoServiceProjection) Count(ctx context.Context) (int64, error) {
	return p.collection.CountDocuments(ctx, bson.M{"is_active": true})
}

func (p *MongoServiceProjection) find(ctx context.Context, filter bson.M, offset, limit int) ([]ServiceReadModel, error) {
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

	var services []ServiceReadModel
	for cursor.Next(ctx) {
		var service ServiceReadModel
		if err := cursor.Decode(&service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, cursor.Err()
}

// HandleServiceCreated handles ServiceCreated event
func (p *MongoServiceProjection) HandleServiceCreated(ctx context.Context, evt event.ServiceCreated) error {
	service := ServiceReadModel{
		ID:          evt.ServiceID,
		ProviderID:  evt.ProviderID,
		Title:       evt.Title,
		Category:    evt.Category,
		Description: evt.Description,
		Price:       evt.Price,
		City:        evt.City,
		ImageUrl:    evt.ImageUrl,
		IsActive:    true,
		CreatedAt:   evt.Timestamp,
		UpdatedAt:   evt.Timestamp,
	}

	if _, err := p.collection.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}

	return nil
}

// HandleServiceUpdated handles ServiceUpdated event
func (p *MongoServiceProjection) HandleServiceUpdated(ctx context.Context, evt event.ServiceUpdated) error {
	update := bson.M{
		"$set": bson.M{
			"title":       evt.Title,
			"category":    evt.Category,
			"description": evt.Description,
			"price":       evt.Price,
			"city":        evt.City,
			"updated_at":  evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.ServiceID}, update); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	return nil
}

// HandleServiceImageUpdated handles ServiceImageUpdated event
func (p *MongoServiceProjection) HandleServiceImageUpdated(ctx context.Context, evt event.ServiceImageUpdated) error {
	update := bson.M{
		"$set": bson.M{
			"image_url":  evt.ImageUrl,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.ServiceID}, update); err != nil {
		return fmt.Errorf("failed to update service image: %w", err)
	}

	return nil
}

// HandleServiceDeactivated handles ServiceDeactivated event
func (p *MongoServiceProjection) HandleServiceDeactivated(ctx context.Context, evt event.ServiceDeactivated) error {
	update := bson.M{
		"$set": bson.M{
			"is_active":  false,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.ServiceID}, update); err != nil {
		return fmt.Errorf("failed to deactivate service: %w", err)
	}

	return nil
}
