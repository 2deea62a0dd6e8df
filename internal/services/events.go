package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

const operationRegistered = "registered"

// RegistrationEvents publishes accepted registrations to Kafka.
type RegistrationEvents struct {
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewRegistrationEvents creates a publisher. A nil writer disables publishing.
func NewRegistrationEvents(kafkaWriter KafkaWriter) *RegistrationEvents {
	return &RegistrationEvents{
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// PublishRegistered publishes a registration event. Failures are logged only.
func (p *RegistrationEvents) PublishRegistered(ctx context.Context, sessionID string, form models.RegistrationForm) {
	ev := models.RegistrationEvent{
		EventID:   uuid.NewString(),
		Timestamp: p.now().Unix(),
		SessionID: sessionID,
		Username:  form.Username,
		Country:   form.ShippingAddress.Country,
		Operation: operationRegistered,
	}

	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal registration event", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.SessionID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish registration event", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Registration event published", "event_id", ev.EventID, "session_id", ev.SessionID)
	}
}
