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

// MongoServiceRepository implements ServiceRepository with MongoDB persistence
type MongoServiceRepository struct {
	database         *mongo.Database
	entityCollection *mongo.Collection
	eventCollection  *mongo.Collection
	session          mongo.Session
}

// NewMongoServiceRepository creates a new MongoDB service repository
func NewMongoServiceRepository(database *mongo.Database) *MongoServiceRepository {
	return &MongoServiceRepository{
		database:         database,
		entityCollection: database.Collection("services"),
		eventCollection:  database.Collection("service_events"),
	}
}

// SetTransaction implements TransactionalRepository
func (r *MongoServiceRepository) SetTransaction(tx interface{}) {
	if tx == nil {
		r.session = nil
		return
	}
	if session, ok := tx.(mongo.Session); ok {
		r.session = session
	}
}

// GetTransaction implements TransactionalRepository
func (r *MongoServiceRepository) GetTransaction() interface{} {
	return r.session
}

// IsTransactional implements TransactionalRepository
func (r *MongoServiceRepository) IsTransactional() bool {
	return r.session != nil
}

func (r *MongoServiceRepository) sessionContext(ctx context.Context) context.Context {
	if r.session != nil {
		return mongo.NewSessionContext(ctx, r.session)
	}
	return ctx
}

// Save stores the service snapshot and appends its uncommitted events
func (r *MongoServiceRepository) Save(ctx context.Context, service *aggregate.Service) error {
	ctxToUse := r.sessionContext(ctx)

	entityDoc := bson.M{
		"_id":         service.GetID(),
		"version":     service.GetVersion(),
		"provider_id": service.ProviderID(),
		"title":       service.Title(),
		"category":    service.Category(),
		"description": service.Description(),
		"price":       service.Price(),
		"city":        service.City(),
		"image_url":   service.ImageUrl(),
		"is_active":   service.IsActive(),
		"created_at":  service.CreatedAt(),
		"updated_at":  service.UpdatedAt(),
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.entityCollection.UpdateOne(ctxToUse, bson.M{"_id": service.GetID()}, bson.M{"$set": entityDoc}, opts)
	if err != nil {
		return fmt.Errorf("failed to save service to MongoDB: %w", err)
	}

	events := service.GetUncommittedEvents()
	if len(events) > 0 {
		var eventDocs []interface{}
		for _, e := range events {
			eventDocs = append(eventDocs, newEventDoc(e))
		}

		if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
			return fmt.Errorf("failed to save service events to MongoDB: %w", err)
		}

		service.MarkEventsAsCommitted()
	}

	return nil
}

// GetByID rebuilds a service aggregate from its event stream
func (r *MongoServiceRepository) GetByID(ctx context.Context, id string) (*aggregate.Service, error) {
	events, err := r.GetEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("service not found: %s", id)
	}

	service, err := aggregate.NewServiceFromHistory(events)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild service %s: %w", id, err)
	}

	return service, nil
}

// SaveEvents appends events for a service aggregate with optimistic concurrency
func (r *MongoServiceRepository) SaveEvents(ctx context.Context, aggregateID string, events []event.DomainEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}
	ctxToUse := r.sessionContext(ctx)

	count, err := r.eventCollection.CountDocuments(ctxToUse, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": expectedVersion},
	})
	if err != nil {
		return fmt.Errorf("failed to check service event stream: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("concurrency conflict on service %s: expected version %d", aggregateID, expectedVersion)
	}

	var eventDocs []interface{}
	for _, e := range events {
		eventDocs = append(eventDocs, newEventDoc(e))
	}

	if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
		return fmt.Errorf("failed to save service events to MongoDB: %w", err)
	}

	return nil
}

// GetEvents retrieves all events for a service aggregate
func (r *MongoServiceRepository) GetEvents(ctx context.Context, aggregateID string) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{"aggregate_id": aggregateID})
}

// GetEventsSince retrieves events after a specific version
func (r *MongoServiceRepository) GetEventsSince(ctx context.Context, aggregateID string, version int) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": version},
	})
}

// GetAllEvents retrieves all service events
func (r *MongoServiceRepository) GetAllEvents(ctx context.Context) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{})
}
