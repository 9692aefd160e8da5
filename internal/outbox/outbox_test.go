package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent/outboxevent"
	"workgrid.io/workgrid/internal/bus"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

type recordingPublisher struct {
	topics []string
	keys   []string
	failAt int // 1-based publish call that fails; 0 never fails
	calls  int
}

func (p *recordingPublisher) Publish(ctx context.Context, topic, key string, value []byte) error {
	p.calls++
	if p.failAt > 0 && p.calls >= p.failAt {
		return errors.New("bus unavailable")
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	return nil
}

func TestAppendTxThenDrainPublishesInOrder(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "outbox_drain")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	for _, userID := range []string{"user-1", "user-2"} {
		env, err := domain.NewEnvelope(domain.EventMemberRemoved, "workgrid-core", "tenant-1",
			domain.MemberRemovedPayload{UserID: userID})
		require.NoError(t, err)
		require.NoError(t, AppendTx(ctx, tx, env))
	}
	require.NoError(t, tx.Commit())

	pub := &recordingPublisher{}
	drainer := NewDrainer(client, pub, 100)

	published, err := drainer.Drain(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, published)
	require.Equal(t, []string{string(domain.EventMemberRemoved), string(domain.EventMemberRemoved)}, pub.topics)
	require.Equal(t, []string{"tenant-1", "tenant-1"}, pub.keys)

	// Everything is stamped; a second drain is a no-op.
	published, err = drainer.Drain(ctx)
	require.NoError(t, err)
	require.Zero(t, published)

	pending, err := client.OutboxEvent.Query().
		Where(outboxevent.PublishedAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, pending)
}

func TestAppendTxRollbackLeavesNothing(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "outbox_rollback")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	env, err := domain.NewEnvelope(domain.EventDeletionCompleted, "workgrid-core", "tenant-1",
		domain.SagaFactPayload{SagaID: "saga-1", SagaType: "tenant_deletion", Status: "COMPLETED"})
	require.NoError(t, err)
	require.NoError(t, AppendTx(ctx, tx, env))
	require.NoError(t, tx.Rollback())

	count, err := client.OutboxEvent.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestDrainStopsAtFirstPublishFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "outbox_fail")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		env, err := domain.NewEnvelope(domain.EventMemberRemoved, "workgrid-core", "tenant-1",
			domain.MemberRemovedPayload{UserID: userID})
		require.NoError(t, err)
		require.NoError(t, AppendTx(ctx, tx, env))
	}
	require.NoError(t, tx.Commit())

	pub := &recordingPublisher{failAt: 2}
	drainer := NewDrainer(client, pub, 100)

	published, err := drainer.Drain(ctx)
	require.Error(t, err)
	require.Equal(t, 1, published)

	// The unpublished tail stays queued for the next run.
	pending, err := client.OutboxEvent.Query().
		Where(outboxevent.PublishedAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, pending)
}

func TestDrainDeliversThroughMemoryBus(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "outbox_bus")
	ctx := context.Background()

	b := bus.NewMemoryBus(2)
	sub, err := b.Subscribe("downstream", string(domain.EventDeletionCompleted))
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	env, err := domain.NewEnvelope(domain.EventDeletionCompleted, "workgrid-core", "tenant-1",
		domain.SagaFactPayload{SagaID: "saga-1", SagaType: "tenant_deletion", Status: "COMPLETED"})
	require.NoError(t, err)
	require.NoError(t, AppendTx(ctx, tx, env))
	require.NoError(t, tx.Commit())

	published, err := NewDrainer(client, b, 100).Drain(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, published)

	var got *bus.Message
	for i := 0; i < sub.Partitions(); i++ {
		select {
		case got = <-sub.Partition(i):
		default:
		}
	}
	require.NotNil(t, got)

	delivered, err := domain.ParseEnvelope(got.Value)
	require.NoError(t, err)
	require.Equal(t, env.EventID, delivered.EventID)
}

func TestPruneBeforeKeepsUnpublishedRows(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "outbox_prune")
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, client.OutboxEvent.Create().
		SetID("row-published").
		SetTopic("organization.deletion.completed").
		SetPartitionKey("tenant-1").
		SetPayload([]byte(`{}`)).
		SetCreatedAt(old).
		SetPublishedAt(old).
		Exec(ctx))
	require.NoError(t, client.OutboxEvent.Create().
		SetID("row-pending").
		SetTopic("organization.deletion.completed").
		SetPartitionKey("tenant-1").
		SetPayload([]byte(`{}`)).
		SetCreatedAt(old).
		Exec(ctx))

	deleted, err := NewDrainer(client, &recordingPublisher{}, 100).PruneBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	remaining, err := client.OutboxEvent.Query().OnlyID(ctx)
	require.NoError(t, err)
	require.Equal(t, "row-pending", remaining)
}