// Package bus abstracts the platform event bus: an append-only, partitioned
// log with per-partition ordering, at-least-once delivery, and independent
// consumer groups. Production brokers plug in behind these interfaces; the
// in-process MemoryBus backs tests, the seed tool, and single-node runs.
package bus

import "context"

// Message is one delivered bus record.
type Message struct {
	Topic     string
	Key       string // partition key (tenant id)
	Value     []byte // serialized envelope
	Partition int
	Offset    int64
}

// Publisher appends messages to the log. Events sharing a key land on the
// same partition and are delivered in publish order.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
}

// Subscription is a consumer group's view of its subscribed topics, split
// into independently consumable partitions.
type Subscription interface {
	// Partitions returns the partition count. Partition indexes are stable
	// for the life of the subscription.
	Partitions() int

	// Partition returns the delivery channel for one partition. Consuming
	// each channel from a single goroutine preserves per-key ordering.
	Partition(i int) <-chan *Message

	// Close detaches the subscription from the bus.
	Close()
}

// Bus is the full collaborator surface the consumer core relies on.
type Bus interface {
	Publisher

	// Subscribe registers a consumer group for a topic set. Subscribing the
	// same group twice returns the existing subscription.
	Subscribe(group string, topics ...string) (Subscription, error)
}
