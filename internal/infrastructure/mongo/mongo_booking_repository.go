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

// MongoBookingRepository implements BookingRepository with MongoDB persistence
type MongoBookingRepository struct {
	database         *mongo.Database
	entityCollection *mongo.Collection
	eventCollection  *mongo.Collection
	session          mongo.Session
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(database *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{
		database:         database,
		entityCollection: database.Collection("bookings"),
		eventCollection:  database.Collection("booking_events"),
	}
}

// SetTransaction implements TransactionalRepository
func (r *MongoBookingRepository) SetTransaction(tx interface{}) {
	if tx == nil {
		r.session = nil
		return
	}
	if session, ok := tx.(mongo.Session); ok {
		r.session = session
	}
}

// GetTransaction implements TransactionalRepository
func (r *MongoBookingRepository) GetTransaction() interface{} {
	return r.session
}

// IsTransactional implements TransactionalRepository
func (r *MongoBookingRepository) IsTransactional() bool {
	return r.session != nil
}

func (r *MongoBookingRepository) sessionContext(ctx context.Context) context.Context {
	if r.session != nil {
		return mongo.NewSessionContext(ctx, r.session)
	}
	return ctx
}

// Save stores the booking snapshot and appends its uncommitted events
func (r *MongoBookingRepository) Save(ctx context.Context, booking *aggregate.Booking) error {
	ctxToUse := r.sessionContext(ctx)

	entityDoc := bson.M{
		"_id":          booking.GetID(),
		"version":      booking.GetVersion(),
		"customer":     booking.Customer(),
		"provider":     booking.Provider(),
		"service":      booking.Service(),
		"service_date": booking.ServiceDate(),
		"booking_time": booking.BookingTime(),
		"note":         booking.Note(),
		"status":       string(booking.Status()),
		"is_active":    booking.IsActive(),
		"created_at":   booking.CreatedAt(),
		"updated_at":   booking.UpdatedAt(),
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.entityCollection.UpdateOne(ctxToUse, bson.M{"_id": booking.GetID()}, bson.M{"$set": entityDoc}, opts)
	if err != nil {
		return fmt.Errorf("failed to save booking to MongoDB: %w", err)
	}

	events := booking.GetUncommittedEvents()
	if len(events) > 0 {
		var eventDocs []interface{}
		for _, e := range events {
			eventDocs = append(eventDocs, newEventDoc(e))
		}

		if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
			return fmt.Errorf("failed to save booking events to MongoDB: %w", err)
		}

		booking.MarkEventsAsCommitted()
	}

	return nil
}

// GetByID rebuilds a booking aggregate from its event stream
func (r *MongoBookingRepository) GetByID(ctx context.Context, id string) (*aggregate.Booking, error) {
	events, err := r.GetEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("booking not found: %s", id)
	}

	booking, err := aggregate.NewBookingFromHistory(events)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild booking %s: %w", id, err)
	}

	return booking, nil
}

// SaveEvents appends events for a booking aggregate with optimistic concurrency
func (r *MongoBookingRepository) SaveEvents(ctx context.Context, aggregateID string, events []event.DomainEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}
	ctxToUse := r.sessionContext(ctx)

	count, err := r.eventCollection.CountDocuments(ctxToUse, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": expectedVersion},
	})
	if err != nil {
		return fmt.Errorf("failed to check booking event stream: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("concurrency conflict on booking %s: expected version %d", aggregateID, expectedVersion)
	}

	var eventDocs []interface{}
	for _, e := range events {
		eventDocs = append(eventDocs, newEventDoc(e))
	}

	if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
		return fmt.Errorf("failed to save booking events to MongoDB: %w", err)
	}

	return nil
}

// GetEvents retrieves all events for a booking aggregate
func (r *MongoBookingRepository) GetEvents(ctx context.Context, aggregateID string) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{"aggregate_id": aggregateID})
}

// GetEventsSince retrieves events after a specific version
func (r *MongoBookingRepository) GetEventsSince(ctx context.Context, aggregateID string, version int) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": version},
	})
}

// GetAllEvents retrieves all booking events
func (r *MongoBookingRepository) GetAllEvents(ctx context.Context) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{})
}
