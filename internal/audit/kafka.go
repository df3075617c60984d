package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher produces audit events onto a Kafka topic. Events are
// keyed by the subject user so per-user ordering is preserved across
// partitions.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

func NewKafkaPublisher(client *kgo.Client, topic string) *KafkaPublisher {
	return &KafkaPublisher{client: client, topic: topic}
}

// wireEvent is the JSON structure published to Kafka.
type wireEvent struct {
	OriginatorID       string         `json:"originatorId"`
	UserID             string         `json:"userId"`
	Summary            string         `json:"summary"`
	BusinessObjectID   string         `json:"businessObjectId"`
	BusinessObjectType string         `json:"businessObjectType"`
	ActivityType       string         `json:"activityType"`
	Timestamp          string         `json:"timestamp"`
	RequestID          string         `json:"requestId,omitempty"`
	Payload            map[string]any `json:"payload,omitempty"`
}

func (p *KafkaPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	value, err := json.Marshal(wireEvent{
		OriginatorID:       event.OriginatorID.String(),
		UserID:             event.UserID.String(),
		Summary:            event.Summary,
		BusinessObjectID:   event.BusinessObjectID,
		BusinessObjectType: string(event.BusinessObjectType),
		ActivityType:       string(event.ActivityType),
		Timestamp:          event.Timestamp.Format(time.RFC3339Nano),
		RequestID:          event.RequestID,
		Payload:            event.Payload,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.UserID.String()),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}
