package eventqueue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConfirmation resolves once answer is written, like a broker ack/nack
// for one delivery tag.
type fakeConfirmation struct {
	answer chan bool
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.answer:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeChannel struct {
	mu            sync.Mutex
	published     []amqp.Publishing
	keys          []string
	confirmations []*fakeConfirmation
	publishErr    error
}

func (f *fakeChannel) PublishWithConfirm(_ context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	confirmation := &fakeConfirmation{answer: make(chan bool, 1)}
	f.confirmations = append(f.confirmations, confirmation)
	return confirmation, nil
}

func (f *fakeChannel) Close() error { return nil }

func (f *fakeChannel) confirmation(i int) *fakeConfirmation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.confirmations) {
		return nil
	}
	return f.confirmations[i]
}

// answeringChannel makes the channel confirm every following publish with acked.
type answeringChannel struct {
	fakeChannel
	acked bool
}

func (a *answeringChannel) PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := a.fakeChannel.PublishWithConfirm(ctx, key, msg)
	if err != nil {
		return nil, err
	}
	confirmation.(*fakeConfirmation).answer <- a.acked
	return confirmation, nil
}

func newTestService(ch publishChannel) *Service {
	return &Service{ch: ch, queueName: "doctors-portal.bookings", log: zap.NewNop()}
}

func sampleEvent() *models.BookingEvent {
	return &models.BookingEvent{
		Type:            constvars.RabbitMQEventBookingCreate,
		BookingID:       "652f9b1e8a4b5c6d7e8f9a0b",
		AppointmentDate: "Oct 15, 2026",
		Treatment:       "Teeth Orthodontics",
		Slot:            "08.00 AM - 08.30 AM",
		Email:           "patient@example.com",
		OccurredAt:      time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestPublishBookingCreated(t *testing.T) {
	ch := &answeringChannel{acked: true}
	svc := newTestService(ch)

	require.NoError(t, svc.PublishBookingCreated(context.Background(), sampleEvent()))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "doctors-portal.bookings", ch.keys[0])
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, constvars.RabbitMQEventBookingCreate, ch.published[0].Type)

	var decoded models.BookingEvent
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &decoded))
	assert.Equal(t, "Teeth Orthodontics", decoded.Treatment)
}

func TestPublishBookingCreatedNack(t *testing.T) {
	svc := newTestService(&answeringChannel{acked: false})

	assert.Error(t, svc.PublishBookingCreated(context.Background(), sampleEvent()))
}

func TestPublishBookingCreatedPublishError(t *testing.T) {
	svc := newTestService(&fakeChannel{publishErr: errors.New("connection reset")})

	assert.Error(t, svc.PublishBookingCreated(context.Background(), sampleEvent()))
}

func TestPublishBookingCreatedContextDone(t *testing.T) {
	svc := newTestService(&fakeChannel{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, svc.PublishBookingCreated(ctx, sampleEvent()))
}

func TestPublishBookingCreatedIgnoresAbandonedConfirm(t *testing.T) {
	ch := &fakeChannel{}
	svc := newTestService(ch)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.Error(t, svc.PublishBookingCreated(ctx, sampleEvent()))

	// The broker nacks the timed out message late; the next message is acked.
	ch.confirmation(0).answer <- false
	done := make(chan error, 1)
	go func() { done <- svc.PublishBookingCreated(context.Background(), sampleEvent()) }()

	require.Eventually(t, func() bool { return ch.confirmation(1) != nil }, time.Second, time.Millisecond)
	ch.confirmation(1).answer <- true

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("publish did not return")
	}
}
