package bus

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "console")
}

func receive(t *testing.T, sub Subscription, partition int) *Message {
	t.Helper()
	select {
	case msg := <-sub.Partition(partition):
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("no message on partition %d", partition)
		return nil
	}
}

func TestPublishPreservesKeyOrder(t *testing.T) {
	b := NewMemoryBus(4)
	defer b.Close()

	sub, err := b.Subscribe("core", "organization.member.added")
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, b.Publish(ctx, "organization.member.added", "tenant-1",
			[]byte(fmt.Sprintf("msg-%d", i))))
	}

	partition := b.partitionFor("tenant-1")
	var lastOffset int64 = -1
	for i := 0; i < 10; i++ {
		msg := receive(t, sub, partition)
		require.Equal(t, fmt.Sprintf("msg-%d", i), string(msg.Value))
		require.Equal(t, partition, msg.Partition)
		require.Greater(t, msg.Offset, lastOffset)
		lastOffset = msg.Offset
	}
}

func TestIndependentConsumerGroups(t *testing.T) {
	b := NewMemoryBus(2)
	defer b.Close()

	core, err := b.Subscribe("core", "billing.entitlements.updated")
	require.NoError(t, err)
	audit, err := b.Subscribe("audit", "billing.entitlements.updated")
	require.NoError(t, err)

	require.NoError(t, b.Publish(context.Background(), "billing.entitlements.updated", "tenant-9", []byte("x")))

	p := b.partitionFor("tenant-9")
	require.Equal(t, "x", string(receive(t, core, p).Value))
	require.Equal(t, "x", string(receive(t, audit, p).Value))
}

func TestSubscribeSameGroupReturnsExisting(t *testing.T) {
	b := NewMemoryBus(2)
	defer b.Close()

	first, err := b.Subscribe("core", "a.b.c")
	require.NoError(t, err)
	second, err := b.Subscribe("core", "d.e.f")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestPublishIgnoresUnsubscribedTopics(t *testing.T) {
	b := NewMemoryBus(1)
	defer b.Close()

	sub, err := b.Subscribe("core", "organization.member.added")
	require.NoError(t, err)

	require.NoError(t, b.Publish(context.Background(), "organization.member.removed", "t", []byte("skip")))
	require.NoError(t, b.Publish(context.Background(), "organization.member.added", "t", []byte("keep")))

	require.Equal(t, "keep", string(receive(t, sub, 0).Value))
}

func TestPublishAfterCloseFails(t *testing.T) {
	b := NewMemoryBus(1)
	b.Close()
	err := b.Publish(context.Background(), "a.b.c", "k", nil)
	require.Error(t, err)
}

func TestPublishBackpressureRespectsContext(t *testing.T) {
	b := NewMemoryBus(1, WithBuffer(1))
	defer b.Close()

	_, err := b.Subscribe("core", "a.b.c")
	require.NoError(t, err)

	require.NoError(t, b.Publish(context.Background(), "a.b.c", "k", []byte("fill")))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = b.Publish(ctx, "a.b.c", "k", []byte("blocked"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
