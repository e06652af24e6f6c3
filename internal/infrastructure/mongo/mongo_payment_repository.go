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

// MongoPaymentRepository implements PaymentRepository with MongoDB persistence
type MongoPaymentRepository struct {
	database         *mongo.Database
	entityCollection *mongo.Collection
	eventCollection  *mongo.Collection
	session          mongo.Session
}

// NewMongoPaymentRepository creates a new MongoDB payment repository
func NewMongoPaymentRepository(database *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{
		database:         database,
		entityCollection: database.Collection("payments"),
		eventCollection:  database.Collection("payment_events"),
	}
}

// SetTransaction implements TransactionalRepository
func (r *MongoPaymentRepository) SetTransaction(tx interface{}) {
	if tx == nil {
		r.session = nil
		return
	}
	if session, ok := tx.(mongo.Session); ok {
		r.session = session
	}
}

// GetTransaction implements TransactionalRepository
func (r *MongoPaymentRepository) GetTransaction() interface{} {
	return r.session
}

// IsTransactional implements TransactionalRepository
func (r *MongoPaymentRepository) IsTransactional() bool {
	return r.session != nil
}

func (r *MongoPaymentRepository) sessionContext(ctx context.Context) context.Context {
	if r.session != nil {
		return mongo.NewSessionContext(ctx, r.session)
	}
	return ctx
}

// Save stores the payment snapshot and appends its uncommitted events
func (r *MongoPaymentRepository) Save(ctx context.Context, payment *aggregate.Payment) error {
	ctxToUse := r.sessionContext(ctx)

	entityDoc := bson.M{
		"_id":          payment.GetID(),
		"version":      payment.GetVersion(),
		"booking_id":   payment.BookingID(),
		"customer_id":  payment.CustomerID(),
		"provider_id":  payment.ProviderID(),
		"order_code":   payment.OrderCode(),
		"amount":       payment.Amount(),
		"description":  payment.Description(),
		"checkout_url": payment.CheckoutUrl(),
		"status":       string(payment.Status()),
		"created_at":   payment.CreatedAt(),
		"updated_at":   payment.UpdatedAt(),
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.entityCollection.UpdateOne(ctxToUse, bson.M{"_id": payment.GetID()}, bson.M{"$set": entityDoc}, opts)
	if err != nil {
		return fmt.Errorf("failed to save payment to MongoDB: %w", err)
	}

	events := payment.GetUncommittedEvents()
	if len(events) > 0 {
		var eventDocs []interface{}
		for _, e := range events {
			eventDocs = append(eventDocs, newEventDoc(e))
		}

		if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
			return fmt.Errorf("failed to save payment events to MongoDB: %w", err)
		}

		payment.MarkEventsAsCommitted()
	}

	return nil
}

// GetByID rebuilds a payment aggregate from its event stream
func (r *MongoPaymentRepository) GetByID(ctx context.Context, id string) (*aggregate.Payment, error) {
	events, err := r.GetEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("payment not found: %s", id)
	}

	payment, err := aggregate.NewPaymentFromHistory(events)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild payment %s: %w", id, err)
	}

	return payment, nil
}

// GetByOrderCode finds a payment by its gateway order code
func (r *MongoPaymentRepository) GetByOrderCode(ctx context.Context, orderCode int64) (*aggregate.Payment, error) {
	ctxToUse := r.sessionContext(ctx)

	var result bson.M
	err := r.entityCollection.FindOne(ctxToUse, bson.M{"order_code": orderCode}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("payment not found for order code %d", orderCode)
		}
		return nil, fmt.Errorf("failed to get payment from MongoDB: %w", err)
	}

	id, _ := result["_id"].(string)
	return r.GetByID(ctx, id)
}

// SaveEvents appends events for a payment aggregate with optimistic concurrency
func (r *MongoPaymentRepository) SaveEvents(ctx context.Context, aggregateID string, events []event.DomainEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}
	ctxToUse := r.sessionContext(ctx)

	count, err := r.eventCollection.CountDocuments(ctxToUse, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": expectedVersion},
	})
	if err != nil {
		return fmt.Errorf("failed to check payment event stream: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("concurrency conflict on payment %s: expected version %d", aggregateID, expectedVersion)
	}

	var eventDocs []interface{}
	for _, e := range events {
		eventDocs = append(eventDocs, newEventDoc(e))
	}

	if _, err := r.eventCollection.InsertMany(ctxToUse, eventDocs); err != nil {
		return fmt.Errorf("failed to save payment events to MongoDB: %w", err)
	}

	return nil
}

// GetEvents retrieves all events for a payment aggregate
func (r *MongoPaymentRepository) GetEvents(ctx context.Context, aggregateID string) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{"aggregate_id": aggregateID})
}

// GetEventsSince retrieves events after a specific version
func (r *MongoPaymentRepository) GetEventsSince(ctx context.Context, aggregateID string, version int) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{
		"aggregate_id":  aggregateID,
		"event_version": bson.M{"$gt": version},
	})
}

// GetAllEvents retrieves all payment events
func (r *MongoPaymentRepository) GetAllEvents(ctx context.Context) ([]event.DomainEvent, error) {
	return loadEvents(r.sessionContext(ctx), r.eventCollection, bson.M{})
}
