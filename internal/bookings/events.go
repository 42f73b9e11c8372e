package bookings

import (
	"context"
	"encoding/json"

	"flightly/internal/config"
	"flightly/internal/kafka"
	"flightly/internal/models"
)

// KafkaEvents publishes booking lifecycle events. The QR payload is
// stripped before publishing; consumers only need the booking facts.
type KafkaEvents struct {
	Producer *kafka.Producer
	Topics   config.TopicConfig
}

func NewKafkaEvents(producer *kafka.Producer, topics config.TopicConfig) *KafkaEvents {
	return &KafkaEvents{Producer: producer, Topics: topics}
}

func (e *KafkaEvents) publish(topic string, booking models.Booking) error {
	booking.QRCode = nil
	msgBytes, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return e.Producer.Publish(context.Background(), topic, booking.ID, msgBytes)
}

func (e *KafkaEvents) PublishBookingConfirmed(booking models.Booking) error {
	return e.publish(e.Topics.BookingConfirmed, booking)
}

func (e *KafkaEvents) PublishBookingCancelled(booking models.Booking) error {
	return e.publish(e.Topics.BookingCancelled, booking)
}

func (e *KafkaEvents) PublishBookingRefunded(booking models.Booking) error {
	return e.publish(e.Topics.BookingRefunded, booking)
}
