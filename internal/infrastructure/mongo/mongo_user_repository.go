package mongo

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements UserRepository with MongoDB persistence
type MongoUserRepository struct {
	database         *mongo.Database
	entityCollection *mongo.Collection
	eventCollection  *mongo.Collection
	session          mongo.Session
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(database *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		database:         database,
		entityCollection: database.Collection("users"),
		eventCollection:  database.Collection("user_events"),
	}
}

// SetTransaction implements TransactionalRepository
func (r *MongoUserRepository) SetTransaction(tx interface{}) {
	if tx == nil {
		r.session = nil
		return
	}
	if session, ok := tx.(mongo.Session); ok {
		r.session = session
	}
}

// GetTransaction implements TransactionalRepository
func (r *MongoUserRepository) GetTransaction() interface{} {
	return r.session
}

// IsTransactional implements TransactionalRepository
func (r *MongoUserRepository) IsTransactional() bool {
	return r.session != nil
}

func (r *MongoUserRepository) sessionContext(ctx context.Context) context.Context {
	if r.session != nil {
		return mongo.NewSessionContext(ctx, r.session)
	}
	return ctx
}

// Save stores the user snapshot and appends its uncommitted events
func (r *MongoUserRepository) Save(ctx context.Context, user *aggregate.User) error {
	ctxToUse := r.sessionContext(ctx)

	entityDoc := bson.M{
		"_id":             user.GetID(),
		"version":         user.GetVersion(),
		"name":            user.Name(),
		"email":           user.Email(),
		"phone":           user.Phone(),
		"address":         user.Address(),
		"hashed_password": user.HashedPassword(),
		"role":            string(user.Role()),
		"image_url":       user.ImageUrl(),
		"is_active":       user.IsActive(),
		"created_at":      user.CreatedAt(),
		"updated_at":      user.UpdatedAt(),
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.entityCollection.UpdateOne(ctxToUse, bson.M{"_id": user.GetID()}, bson.M{"$set": entityDoc}, opts)
	if err != nil {
		return fmt.Errorf("failed to save user to MongoDB: %w", err)
	}

	events := user.GetUncommittedEvents()
	if len(events) > 0 {
		var eventDocs []interface{}
		for _, e := range events {
			eventDocs = append(eventDocs, newEventDoc(e))
		}

		if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
			return fmt.Errorf("failed to save user events to MongoDB: %w", err)
		}

		user.MarkEventsAsCommitted()
	}

	return nil
}

// GetByID rebuilds a user aggregate from its event stream
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*aggregate.User, error) {
	events, err := r.GetEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("user not found: %s", id)
	}

	user, err := aggregate.NewUserFromHistory(events)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild user %s: %w", id, err)
	}

	return user, nil
}

// SaveEvents appends events for a user aggregate with optimistic concurrency
func (r *MongoUserRepository) SaveEvents(ctx context.Context, aggregateID string, events []event.DomainEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}
	ctxToUse := r.sessionContext(ctx)

	count, err := r.eventCollection.CountDocuments(ctxToUse, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": expectedVersion},
	})
	if err != nil {
		return fmt.Errorf("failed to check user event stream: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("concurrency conflict on user %s: expected version %d", aggregateID, expectedVersion)
	}

	var eventDocs []interface{}
	for _, e := range events {
		eventDocs = append(eventDocs, newEventDoc(e))
	}

	if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
		return fmt.Errorf("failed to save user events to MongoDB: %w", err)
	}

	return nil
}

// GetEvents retrieves all events for a user aggregate
func (r *MongoUserRepository) GetEvents(ctx context.Context, aggregateID string) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{"aggregate_id": aggregateID})
}

// GetEventsSince retrieves events after a specific version
func (r *MongoUserRepository) GetEventsSince(ctx context.Context, aggregateID string, version int) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": version},
	})
}

// GetAllEvents retrieves all user events
func (r *MongoUserRepository) GetAllEvents(ctx context.Context) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{})
}
