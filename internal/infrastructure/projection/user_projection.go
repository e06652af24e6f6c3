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

// UserReadModel represents the read model for users
type UserReadModel struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Address        string    `bson:"address" json:"address"`
	HashedPassword string    `bson:"hashed_password" json:"-"`
	Role           string    `bson:"role" json:"role"`
	ImageUrl       string    `bson:"image_url" json:"image_url"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
	LastLoginAt    time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// MongoUserProjection maintains the user read model in MongoDB
type MongoUserProjection struct {
	collection *mongo.Collection
}

// NewMongoUserProjection creates a new MongoDB user projection
func NewMongoUserProjection(db *mongo.Database) *MongoUserProjection {
	collection := db.Collection("user_views")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: failed to create user indexes: %v", err)
	}

	return &MongoUserProjection{
		collection: collection,
	}
}

// GetByID retrieves a user by ID
func (p *MongoUserProjection) GetByID(ctx context.Context, id string) (*UserReadModel, error) {
	var user UserReadModel
	err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found: %s", id)
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (p *MongoUserProjection) GetByEmail(ctx context.Context, email string) (*UserReadModel, error) {
	var user UserReadModel
	err := p.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found: %s", email)
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the email already exists
func (p *MongoUserProjection) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := p.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByRole retrieves users by role with pagination
func (p *MongoUserProjection) ListByRole(ctx context.Context, role string, offset, limit int) ([]UserReadModel, error) {
	return p.find(ctx, bson.M{"role": role, "is_active": true}, offset, limit)
}

// ListAll retrieves all users with pagination
func (p *MongoUserProjection) ListAll(ctx context.Context, offset, limit int) ([]UserReadModel, error) {
	return p.find(ctx, bson.M{}, offset, limit)
}

// CountByRole counts users per role
func (p *MongoUserProjection) CountByRole(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := p.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user roles: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Role  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Role] = row.Count
	}

	return counts, cursor.Err()
}

func (p *MongoUserProjection) find(ctx context.Context, filter bson.M, offset, limit int) ([]UserReadModel, error) {
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

	var users []UserReadModel
	for cursor.Next(ctx) {
		var user UserReadModel
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, cursor.Err()
}

// HandleUserRegistered handles UserRegistered event
func (p *MongoUserProjection) HandleUserRegistered(ctx context.Context, evt event.UserRegistered) error {
	user := UserReadModel{
		ID:             evt.UserID,
		Name:           evt.Name,
		Email:          evt.Email,
		Phone:          evt.Phone,
		Address:        evt.Address,
		HashedPassword: evt.HashedPassword,
		Role:           evt.Role,
		ImageUrl:       evt.ImageUrl,
		IsActive:       evt.IsActive,
		CreatedAt:      evt.Timestamp,
		UpdatedAt:      evt.Timestamp,
	}

	if _, err := p.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// HandleUserProfileUpdated handles UserProfileUpdated event
func (p *MongoUserProjection) HandleUserProfileUpdated(ctx context.Context, evt event.UserProfileUpdated) error {
	update := bson.M{
		"$set": bson.M{
			"name":       evt.Name,
			"phone":      evt.Phone,
			"address":    evt.Address,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.UserID}, update); err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	return nil
}

// HandleUserPasswordChanged handles UserPasswordChanged event
func (p *MongoUserProjection) HandleUserPasswordChanged(ctx context.Context, evt event.UserPasswordChanged) error {
	update := bson.M{
		"$set": bson.M{
			"hashed_password": evt.HashedPassword,
			"updated_at":      evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.UserID}, update); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	return nil
}

// HandleUserLoggedIn handles UserLoggedIn event
func (p *MongoUserProjection) HandleUserLoggedIn(ctx context.Context, evt event.UserLoggedIn) error {
	update := bson.M{
		"$set": bson.M{
			"last_login_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.UserID}, update); err != nil {
		return fmt.Errorf("failed to record user login: %w", err)
	}

	return nil
}

// HandleUserDeactivated handles UserDeactivated event
func (p *MongoUserProjection) HandleUserDeactivated(ctx context.Context, evt event.UserDeactivated) error {
	update := bson.M{
		"$set": bson.M{
			"is_active":  false,
			"updated_at": evt.Timestamp,
		},
	}

	if _, err := p.collection.UpdateOne(ctx, bson.M{"_id": evt.UserID}, update); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}
