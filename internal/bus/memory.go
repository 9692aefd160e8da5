package bus

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"go.uber.org/zap"

	"workgrid.io/workgrid/internal/pkg/logger"
)

// MemoryBus is an in-process partitioned log. Each consumer group gets its
// own buffered channel per partition; publish fans out to every group whose
// topic set matches, hashing the key to pick the partition. Delivery within
// a partition is strictly FIFO.
type MemoryBus struct {
	partitions int
	buffer     int

	mu      sync.RWMutex
	groups  map[string]*memorySubscription
	offsets []int64
	closed  bool
}

// MemoryBusOption configures a MemoryBus.
type MemoryBusOption func(*MemoryBus)

// WithBuffer sets the per-partition channel buffer (default 256). A full
// buffer applies backpressure to publishers.
func WithBuffer(n int) MemoryBusOption {
	return func(b *MemoryBus) { b.buffer = n }
}

// NewMemoryBus creates a bus with the given partition count.
func NewMemoryBus(partitions int, opts ...MemoryBusOption) *MemoryBus {
	if partitions < 1 {
		partitions = 1
	}
	b := &MemoryBus{
		partitions: partitions,
		buffer:     256,
		groups:     make(map[string]*memorySubscription),
		offsets:    make([]int64, partitions),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish appends a message, fanning it out to every subscribed group.
func (b *MemoryBus) Publish(ctx context.Context, topic, key string, value []byte) error {
	if topic == "" {
		return fmt.Errorf("publish: topic is required")
	}
	partition := b.partitionFor(key)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("publish to closed bus")
	}
	offset := b.offsets[partition]
	b.offsets[partition]++
	subs := make([]*memorySubscription, 0, len(b.groups))
	for _, sub := range b.groups {
		if sub.wants(topic) {
			subs = append(subs, sub)
		}
	}
	b.mu.Unlock()

	msg := &Message{
		Topic:     topic,
		Key:       key,
		Value:     value,
		Partition: partition,
		Offset:    offset,
	}

	for _, sub := range subs {
		select {
		case sub.channels[partition] <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe registers a consumer group. The same group name returns the
// existing subscription regardless of the topic argument.
func (b *MemoryBus) Subscribe(group string, topics ...string) (Subscription, error) {
	if group == "" {
		return nil, fmt.Errorf("subscribe: group is required")
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("subscribe: at least one topic is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("subscribe on closed bus")
	}
	if existing, ok := b.groups[group]; ok {
		return existing, nil
	}

	sub := &memorySubscription{
		bus:      b,
		group:    group,
		topics:   make(map[string]struct{}, len(topics)),
		channels: make([]chan *Message, b.partitions),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}
	for i := range sub.channels {
		sub.channels[i] = make(chan *Message, b.buffer)
	}
	b.groups[group] = sub

	logger.Debug("consumer group subscribed",
		zap.String("group", group),
		zap.Int("topics", len(topics)),
		zap.Int("partitions", b.partitions),
	)
	return sub, nil
}

// Close rejects further publishes and detaches all subscriptions. Channels
// are left open; consumers exit via context cancellation, which avoids a
// publish racing a channel close.
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.groups = make(map[string]*memorySubscription)
}

func (b *MemoryBus) partitionFor(key string) int {
	if key == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(b.partitions))
}

type memorySubscription struct {
	bus      *MemoryBus
	group    string
	topics   map[string]struct{}
	channels []chan *Message

	closeOnce sync.Once
}

func (s *memorySubscription) wants(topic string) bool {
	_, ok := s.topics[topic]
	return ok
}

// Partitions returns the partition count.
func (s *memorySubscription) Partitions() int { return len(s.channels) }

// Partition returns the delivery channel for one partition.
func (s *memorySubscription) Partition(i int) <-chan *Message { return s.channels[i] }

// Close detaches the subscription from the bus. Channels stay open so an
// in-flight publish never hits a closed channel.
func (s *memorySubscription) Close() {
	s.closeOnce.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.groups, s.group)
		s.bus.mu.Unlock()
	})
}
