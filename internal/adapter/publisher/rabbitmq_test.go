package publisher_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/srgjo27/movie_booking/internal/adapter/publisher"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	b := domain.NewBooking(uuid.New(), 2, 1, []int64{5, 6}, at)
	event := domain.NewBookingEvent(domain.EventBookingCreated, b, at)

	msg, err := publisher.NewMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "booking.created", msg.Type)
	assert.Equal(t, b.ID.String()+":booking.created", msg.MessageId)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, b.ID.String(), decoded["booking_id"])
	assert.Equal(t, []any{float64(5), float64(6)}, decoded["seat_ids"])
}

func TestNop(t *testing.T) {
	assert.NoError(t, publisher.Nop{}.Publish(context.Background(), domain.BookingEvent{}))
}
