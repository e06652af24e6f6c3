package mongo

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newEventDoc builds the envelope stored in an event collection
func newEventDoc(e event.DomainEvent) bson.M {
	return bson.M{
		"aggregate_id":  e.AggregateID(),
		"event_type":    e.EventType(),
		"event_version": e.Version(),
		"occurred_at":   e.OccurredAt(),
		"event_data":    e,
	}
}

// decodeDomainEvent rebuilds a typed domain event from its stored envelope
func decodeDomainEvent(doc bson.M) (event.DomainEvent, error) {
	eventType, _ := doc["event_type"].(string)

	raw, err := bson.Marshal(doc["event_data"])
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode event data: %w", err)
	}

	var ev event.DomainEvent
	switch eventType {
	case "UserRegistered":
		ev = &event.UserRegistered{}
	case "UserProfileUpdated":
		ev = &event.UserProfileUpdated{}
	case "UserPasswordChanged":
		ev = &event.UserPasswordChanged{}
	case "UserLoggedIn":
		ev = &event.UserLoggedIn{}
	case "UserDeactivated":
		ev = &event.UserDeactivated{}
	case "BookingCreated":
		ev = &event.BookingCreated{}
	case "BookingStatusChanged":
		ev = &event.BookingStatusChanged{}
	case "BookingRescheduled":
		ev = &event.BookingRescheduled{}
	case "BookingCancelled":
		ev = &event.BookingCancelled{}
	case "BookingCompleted":
		ev = &event.BookingCompleted{}
	case "ServiceCreated":
		ev = &event.ServiceCreated{}
	case "ServiceUpdated":
		ev = &event.ServiceUpdated{}
	case "ServiceImageUpdated":
		ev = &event.ServiceImageUpdated{}
	case "ServiceDeactivated":
		ev = &event.ServiceDeactivated{}
	case "PaymentCreated":
		ev = &event.PaymentCreated{}
	case "PaymentCompleted":
		ev = &event.PaymentCompleted{}
	case "PaymentCancelled":
		ev = &event.PaymentCancelled{}
	case "PaymentExpired":
		ev = &event.PaymentExpired{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := bson.Unmarshal(raw, ev); err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", eventType, err)
	}

	return ev, nil
}

// loadEvents reads an event stream, ordered by event version
func loadEvents(ctx context.Context, collection *mongo.Collection, filter bson.M) ([]event.DomainEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "event_version", Value: 1}, {Key: "occurred_at", Value: 1}})
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []event.DomainEvent
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode event document: %w", err)
		}
		ev, err := decodeDomainEvent(doc)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}
