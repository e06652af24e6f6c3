package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"
)

func TestInMemoryEventBusDeliversToSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus()

	var seen []string
	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			seen = append(seen, e.(*event.BookingCompleted).BookingID)
			return nil
		}))

	err := bus.Publish(context.Background(), &event.BookingCompleted{BookingID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, seen)
}

func TestInMemoryEventBusIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewInMemoryEventBus()

	err := bus.Publish(context.Background(), &event.BookingCompleted{BookingID: "b1"})
	assert.NoError(t, err)
}

func TestInMemoryEventBusCollectsHandlerErrors(t *testing.T) {
	bus := NewInMemoryEventBus()

	calls := 0
	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			calls++
			return errors.New("projection down")
		}))
	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			calls++
			return nil
		}))

	err := bus.Publish(context.Background(), &event.BookingCompleted{BookingID: "b1"})
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failing handler does not block the rest")
}

func TestInMemoryEventBusPublishBatchPreservesOrder(t *testing.T) {
	bus := NewInMemoryEventBus()

	var order []string
	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			order = append(order, e.(*event.BookingCompleted).BookingID)
			return nil
		}))

	events := []event.DomainEvent{
		&event.BookingCompleted{BookingID: "b1"},
		&event.BookingCompleted{BookingID: "b2"},
		&event.BookingCompleted{BookingID: "b3"},
	}
	require.NoError(t, bus.PublishBatch(context.Background(), events))
	assert.Equal(t, []string{"b1", "b2", "b3"}, order)
}

func TestAsyncEventBusWaitsForHandlers(t *testing.T) {
	bus := NewAsyncEventBus()
	defer bus.Close()

	done := make(chan string, 1)
	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			done <- e.(*event.BookingCompleted).BookingID
			return nil
		}))

	require.NoError(t, bus.Publish(context.Background(), &event.BookingCompleted{BookingID: "b1"}))
	bus.Wait()

	assert.Equal(t, "b1", <-done)
}

func TestAsyncEventBusReportsHandlerErrors(t *testing.T) {
	bus := NewAsyncEventBus()
	defer bus.Close()

	bus.Subscribe("BookingCompleted", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return errors.New("projection down")
		}))

	require.NoError(t, bus.Publish(context.Background(), &event.BookingCompleted{BookingID: "b1"}))
	bus.Wait()

	select {
	case err := <-bus.GetErrors():
		assert.Error(t, err)
	default:
		t.Fatal("expected an error on the bus error channel")
	}
}
