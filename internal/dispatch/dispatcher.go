// Package dispatch routes inbound bus messages to their handlers. For each
// message: deserialize, validate the declared schema version, check the
// idempotency ledger, invoke the handlers inside the ledger transaction, and
// mark the event processed — all or nothing. Messages from one partition are
// processed strictly sequentially; partitions run concurrently on the worker
// pool.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/bus"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/ledger"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/pkg/worker"
)

// HandlerFunc applies one event's business effect. All writes must go
// through tx so the effect commits atomically with the ledger row.
type HandlerFunc func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error

// Config tunes the dispatch loop.
type Config struct {
	// HandlerTimeout bounds one delivery attempt (all handlers plus the
	// ledger transaction). Exceeding it is handler failure.
	HandlerTimeout time.Duration

	// MaxRetries bounds delivery attempts before dead-lettering.
	MaxRetries int

	// RetryBackoff is doubled per attempt, capped at RetryBackoffMax.
	RetryBackoff    time.Duration
	RetryBackoffMax time.Duration

	// BatchSize caps how many queued messages one partition pass drains.
	BatchSize int
}

type registration struct {
	name     string
	versions map[string]struct{}
	fn       HandlerFunc
}

// Dispatcher demultiplexes events by type to registered handlers.
type Dispatcher struct {
	cfg    Config
	ledger *ledger.Ledger
	sink   *Sink
	pools  *worker.Pools

	mu       sync.RWMutex
	handlers map[domain.EventType][]registration
}

// New creates a Dispatcher.
func New(cfg Config, l *ledger.Ledger, sink *Sink, pools *worker.Pools) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	return &Dispatcher{
		cfg:      cfg,
		ledger:   l,
		sink:     sink,
		pools:    pools,
		handlers: make(map[domain.EventType][]registration),
	}
}

// Register adds a handler for an event type. versions lists the schema
// versions the handler can parse; it must cover at least the two most recent
// versions of the event.
func (d *Dispatcher) Register(eventType domain.EventType, name string, versions []string, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	reg := registration{name: name, versions: make(map[string]struct{}, len(versions)), fn: fn}
	for _, v := range versions {
		reg.versions[v] = struct{}{}
	}
	d.handlers[eventType] = append(d.handlers[eventType], reg)
}

// Topics returns the registered event types as bus topics, for subscribing.
func (d *Dispatcher) Topics() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	topics := make([]string, 0, len(d.handlers))
	for t := range d.handlers {
		topics = append(topics, string(t))
	}
	return topics
}

// Run consumes the subscription until ctx is cancelled. Each partition gets
// one sequential loop on the partition pool; Run blocks until every loop has
// exited.
func (d *Dispatcher) Run(ctx context.Context, sub bus.Subscription) error {
	var wg sync.WaitGroup
	for i := 0; i < sub.Partitions(); i++ {
		ch := sub.Partition(i)
		partition := i
		wg.Add(1)
		if err := d.pools.Partition.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			d.partitionLoop(ctx, partition, ch)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("start partition %d loop: %w", partition, err)
		}
	}
	wg.Wait()
	return nil
}

// item is a drained message with its parse result. A nil env means the
// envelope was unparseable.
type item struct {
	msg *bus.Message
	env *domain.Envelope
	err error
}

func (d *Dispatcher) partitionLoop(ctx context.Context, partition int, ch <-chan *bus.Message) {
	logger.Debug("partition loop started", zap.Int("partition", partition))
	for {
		select {
		case <-ctx.Done():
			logger.Debug("partition loop stopped", zap.Int("partition", partition))
			return
		case msg := <-ch:
			if msg == nil {
				return
			}
			batch := d.drain(ch, msg)
			prioritizeRemovals(batch)
			for _, it := range batch {
				d.handleItem(ctx, it)
				if ctx.Err() != nil {
					return
				}
			}
		}
	}
}

// drain collects the first message plus whatever else is already queued, up
// to BatchSize, without blocking.
func (d *Dispatcher) drain(ch <-chan *bus.Message, first *bus.Message) []*item {
	batch := []*item{parseItem(first)}
	for len(batch) < d.cfg.BatchSize {
		select {
		case msg := <-ch:
			if msg == nil {
				return batch
			}
			batch = append(batch, parseItem(msg))
		default:
			return batch
		}
	}
	return batch
}

func parseItem(msg *bus.Message) *item {
	env, err := domain.ParseEnvelope(msg.Value)
	if err != nil {
		return &item{msg: msg, err: err}
	}
	return &item{msg: msg, env: env}
}

// prioritizeRemovals moves membership-removal events ahead of other queued
// updates for the same tenant, minimizing the fail-closed staleness window
// after a removal. A removal never overtakes another membership event of its
// own tenant; that would change the final projection state.
func prioritizeRemovals(batch []*item) {
	for i := 1; i < len(batch); i++ {
		cur := batch[i]
		if cur.env == nil || cur.env.EventType != domain.EventMemberRemoved {
			continue
		}
		j := i
		for j > 0 && !blocksRemoval(batch[j-1], cur) {
			batch[j-1], batch[j] = batch[j], batch[j-1]
			j--
		}
	}
}

func blocksRemoval(prev, removal *item) bool {
	if prev.env == nil {
		// Unparseable message: its order is irrelevant, safe to overtake.
		return false
	}
	if prev.env.TenantID != removal.env.TenantID {
		return false
	}
	switch prev.env.EventType {
	case domain.EventMemberAdded, domain.EventMemberRemoved, domain.EventMemberRoleChanged:
		return true
	default:
		return false
	}
}

func (d *Dispatcher) handleItem(ctx context.Context, it *item) {
	if it.env == nil {
		// Unparseable envelope: poison, straight to the dead-letter sink.
		d.deadLetter(ctx, it.msg.Topic, "", it.msg.Value,
			fmt.Sprintf("parse envelope: %v", it.err), 1)
		return
	}
	if err := d.Process(ctx, it.env, it.msg.Value); err != nil {
		logger.Error("message abandoned after dead-letter failure",
			zap.String("event_id", it.env.EventID),
			zap.String("event_type", string(it.env.EventType)),
			zap.Error(err),
		)
	}
}

// Process runs the full pipeline for one parsed envelope: version check,
// ledger-guarded handler invocation with bounded retries, dead-letter on
// exhaustion. Also the entry point for operator replays. The returned error
// is non-nil only when even the dead-letter write failed.
func (d *Dispatcher) Process(ctx context.Context, env *domain.Envelope, raw []byte) error {
	d.mu.RLock()
	regs := d.handlers[env.EventType]
	d.mu.RUnlock()

	if len(regs) == 0 {
		logger.Warn("no handlers registered for event type",
			zap.String("event_type", string(env.EventType)),
			zap.String("event_id", env.EventID),
		)
		return nil
	}

	if !d.versionSupported(regs, env.EventVersion) {
		return d.deadLetter(ctx, env.Topic(), env.EventID, raw,
			fmt.Sprintf("unsupported schema version %q for %s", env.EventVersion, env.EventType), 1)
	}

	var lastErr error
	backoff := d.cfg.RetryBackoff
	for attempt := 1; attempt <= d.cfg.MaxRetries; attempt++ {
		applied, err := d.applyOnce(ctx, regs, env)
		if err == nil {
			if !applied {
				logger.Debug("duplicate event skipped",
					zap.String("event_id", env.EventID),
					zap.String("event_type", string(env.EventType)),
				)
			}
			return nil
		}
		lastErr = err

		if apperrors.IsPoison(err) {
			return d.deadLetter(ctx, env.Topic(), env.EventID, raw, err.Error(), attempt)
		}

		logger.Warn("handler attempt failed",
			zap.String("event_id", env.EventID),
			zap.String("event_type", string(env.EventType)),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < d.cfg.MaxRetries {
			if !sleepCtx(ctx, backoff) {
				return nil
			}
			backoff *= 2
			if d.cfg.RetryBackoffMax > 0 && backoff > d.cfg.RetryBackoffMax {
				backoff = d.cfg.RetryBackoffMax
			}
		}
	}

	return d.deadLetter(ctx, env.Topic(), env.EventID, raw,
		fmt.Sprintf("retries exhausted: %v", lastErr), d.cfg.MaxRetries)
}

// applyOnce executes one delivery attempt: all handlers for the type run
// inside the ledger transaction, bounded by the handler timeout.
func (d *Dispatcher) applyOnce(ctx context.Context, regs []registration, env *domain.Envelope) (bool, error) {
	if d.cfg.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.HandlerTimeout)
		defer cancel()
	}
	return d.ledger.Apply(ctx, env.EventID, func(ctx context.Context, tx *ent.Tx) error {
		for _, reg := range regs {
			if err := reg.fn(ctx, tx, env); err != nil {
				return fmt.Errorf("handler %s: %w", reg.name, err)
			}
		}
		return nil
	})
}

func (d *Dispatcher) versionSupported(regs []registration, version string) bool {
	for _, reg := range regs {
		if _, ok := reg.versions[version]; !ok {
			return false
		}
	}
	return true
}

// Replay re-runs a dead letter through the pipeline and stamps it on
// success. The idempotency ledger makes replaying an already-processed
// event harmless.
func (d *Dispatcher) Replay(ctx context.Context, id string) error {
	dl, err := d.sink.Get(ctx, id)
	if err != nil {
		return err
	}
	env, err := domain.ParseEnvelope(dl.Payload)
	if err != nil {
		return fmt.Errorf("replay %s: payload still unparseable: %w", id, err)
	}
	if err := d.Process(ctx, env, dl.Payload); err != nil {
		return fmt.Errorf("replay %s: %w", id, err)
	}
	return d.sink.MarkReplayed(ctx, id)
}

// deadLetter parks a message. The sink write is the last line of defense;
// its failure is surfaced to the caller and logged loudly, never swallowed.
func (d *Dispatcher) deadLetter(ctx context.Context, topic, eventID string, payload []byte, reason string, attempts int) error {
	if err := d.sink.Send(ctx, topic, eventID, payload, reason, attempts); err != nil {
		logger.Error("CRITICAL: dead-letter write failed, message only survives in the bus",
			zap.String("topic", topic),
			zap.String("event_id", eventID),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return err
	}
	logger.Warn("message dead-lettered",
		zap.String("topic", topic),
		zap.String("event_id", eventID),
		zap.String("reason", reason),
		zap.Int("attempts", attempts),
	)
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
