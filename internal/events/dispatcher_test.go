package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersOfMatchingType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var booked, reviewed int
	d.Subscribe(EventAppointmentBooked, func(_ context.Context, _ Event) error {
		booked++
		return nil
	})
	d.Subscribe(EventSubmissionReviewed, func(_ context.Context, _ Event) error {
		reviewed++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAppointmentBooked}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAppointmentBooked}))

	assert.Equal(t, 2, booked)
	assert.Equal(t, 0, reviewed)
}

func TestPublishContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventFertilizerRequested, func(_ context.Context, _ Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventFertilizerRequested, func(_ context.Context, _ Event) error {
		second = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventFertilizerRequested}))
	assert.True(t, second)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSubmissionCreated}))
}
