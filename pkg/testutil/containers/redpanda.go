//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcredpanda "github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaContainer wraps a Redpanda broker for Kafka-protocol tests.
type KafkaContainer struct {
	Container testcontainers.Container
	Brokers   []string
}

// NewKafkaContainer starts a single-node Redpanda broker.
func NewKafkaContainer(t *testing.T) *KafkaContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcredpanda.Run(ctx, "redpandadata/redpanda:v24.1.2")
	if err != nil {
		t.Fatalf("failed to start redpanda container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	broker, err := container.KafkaSeedBroker(ctx)
	if err != nil {
		t.Fatalf("failed to get redpanda broker address: %v", err)
	}

	return &KafkaContainer{Container: container, Brokers: []string{broker}}
}

// NewClient connects a franz-go client to the broker. Pass a consumer topic
// to also subscribe from the start of that topic.
func (k *KafkaContainer) NewClient(t *testing.T, consumeTopic string) *kgo.Client {
	t.Helper()

	opts := []kgo.Opt{kgo.SeedBrokers(k.Brokers...)}
	if consumeTopic != "" {
		opts = append(opts,
			kgo.ConsumeTopics(consumeTopic),
			kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		)
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		t.Fatalf("failed to create kafka client: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}
