package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/models"
)

// Ensure Failover implements Ledger
var _ ledger.Ledger = (*Failover)(nil)

// Upstream is the authoritative ledger, normally a *Remote.
type Upstream interface {
	ledger.Ledger
	State(ctx context.Context) (models.State, error)
}

// Failover serves the ledger from upstream while it is reachable and from a
// local mirror while it is not.
//
// The mirror is refreshed after every upstream write and after the first
// upstream read since the Failover was created or last lost upstream.
// Writes made while offline are applied to the mirror and queued. The queue
// is replayed in order before the next upstream call (or by Reconcile).
// Local ids are rewritten to the ids upstream assigns; queued operations
// upstream rejects as invalid are dropped. Replay stops at the first
// transport failure and keeps the rest queued.
type Failover struct {
	mu       sync.Mutex
	upstream Upstream
	local    *ledger.Service
	outbox   Outbox
	queue    Queue
	logger   *slog.Logger
	// fresh is set once the mirror matches upstream and cleared when
	// upstream is lost.
	fresh bool
}

// FailoverOption configures a Failover.
type FailoverOption func(*Failover)

// WithFailoverLogger sets the logger.
func WithFailoverLogger(l *slog.Logger) FailoverOption {
	return func(f *Failover) { f.logger = l }
}

// NewFailover creates a Failover and loads any queue left by a previous run.
// local should generate ids with ledger.LocalIDs.
func NewFailover(upstream Upstream, local *ledger.Service, outbox Outbox, opts ...FailoverOption) (*Failover, error) {
	f := &Failover{
		upstream: upstream,
		local:    local,
		outbox:   outbox,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "failover")

	q, err := outbox.Load()
	if err != nil {
		return nil, err
	}
	f.queue = q
	return f, nil
}

// Pending returns the number of queued operations.
func (f *Failover) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue.Ops)
}

// Reconcile replays the queue and refreshes the mirror from upstream.
func (f *Failover) Reconcile(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.replay(ctx); err != nil {
		return err
	}
	return f.refresh(ctx)
}

func (f *Failover) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.online(ctx) {
		p, err := f.upstream.AddParticipant(ctx, name)
		if !failsOver(err) {
			if err == nil {
				f.refreshQuietly(ctx)
			}
			return p, err
		}
		f.wentOffline(ctx, "AddParticipant", err)
	}

	p, err := f.local.AddParticipant(ctx, name)
	if err != nil {
		return models.Participant{}, err
	}
	return p, f.enqueue(Op{Kind: OpAddParticipant, Name: name, LocalID: p.ID})
}

func (f *Failover) RemoveParticipant(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.online(ctx) {
		err := f.upstream.RemoveParticipant(ctx, id)
		if !failsOver(err) {
			if err == nil {
				f.refreshQuietly(ctx)
			}
			return err
		}
		f.wentOffline(ctx, "RemoveParticipant", err)
	}

	if err := f.local.RemoveParticipant(ctx, id); err != nil {
		return err
	}
	return f.enqueue(Op{Kind: OpRemoveParticipant, ParticipantID: id})
}

func (f *Failover) AddExpense(ctx context.Context, in ledger.NewExpense) (models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.online(ctx) {
		e, err := f.upstream.AddExpense(ctx, in)
		if !failsOver(err) {
			if err == nil {
				f.refreshQuietly(ctx)
			}
			return e, err
		}
		f.wentOffline(ctx, "AddExpense", err)
	}

	e, err := f.local.AddExpense(ctx, in)
	if err != nil {
		return models.Expense{}, err
	}
	queued := ledger.NewExpense{
		Description:  e.Description,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		Participants: append([]string(nil), e.Participants...),
	}
	return e, f.enqueue(Op{Kind: OpAddExpense, Expense: &queued, LocalID: e.ID})
}

func (f *Failover) Participants(ctx context.Context) ([]models.Participant, error) {
	return read(ctx, f, "Participants", f.upstream.Participants, f.local.Participants)
}

func (f *Failover) Expenses(ctx context.Context) ([]models.Expense, error) {
	return read(ctx, f, "Expenses", f.upstream.Expenses, f.local.Expenses)
}

func (f *Failover) Balances(ctx context.Context) (models.BalanceSheet, error) {
	return read(ctx, f, "Balances", f.upstream.Balances, f.local.Balances)
}

func (f *Failover) Summary(ctx context.Context) (ledger.Summary, error) {
	return read(ctx, f, "Summary", f.upstream.Summary, f.local.Summary)
}

// read serves a query from upstream, or from the mirror when upstream is
// unreachable or still has queued writes to catch up on.
func read[T any](ctx context.Context, f *Failover, op string, remote, local func(context.Context) (T, error)) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.online(ctx) {
		v, err := remote(ctx)
		if !failsOver(err) {
			if err == nil && !f.fresh {
				f.refreshQuietly(ctx)
			}
			return v, err
		}
		f.wentOffline(ctx, op, err)
	}
	return local(ctx)
}

// online drains the queue and reports whether upstream is in sync.
func (f *Failover) online(ctx context.Context) bool {
	if len(f.queue.Ops) == 0 {
		return true
	}
	if err := f.replay(ctx); err != nil {
		f.logger.DebugContext(ctx, "Replay incomplete", "pending", len(f.queue.Ops), "error", err)
		return false
	}
	f.refreshQuietly(ctx)
	return true
}

// replay sends queued operations upstream in order and saves the queue after
// every step. Delivery is at-least-once: a crash between an upstream call and
// the save replays that operation on the next run.
func (f *Failover) replay(ctx context.Context) error {
	if len(f.queue.Ops) == 0 {
		return nil
	}
	f.logger.InfoContext(ctx, "Replaying offline changes", "pending", len(f.queue.Ops))

	for len(f.queue.Ops) > 0 {
		op := f.queue.Ops[0]
		err := f.apply(ctx, op)
		if failsOver(err) {
			return fmt.Errorf("failed to replay %s: %w", op.Kind, err)
		}
		if err != nil {
			f.logger.WarnContext(ctx, "Dropping offline change rejected by server",
				"kind", op.Kind,
				"local_id", op.LocalID,
				"error", err,
			)
		}

		f.queue.Ops = f.queue.Ops[1:]
		if len(f.queue.Ops) == 0 {
			f.queue.IDs = nil
		}
		if err := f.outbox.Save(f.queue); err != nil {
			return err
		}
	}

	f.logger.InfoContext(ctx, "Offline changes replayed")
	return nil
}

func (f *Failover) apply(ctx context.Context, op Op) error {
	switch op.Kind {
	case OpAddParticipant:
		p, err := f.upstream.AddParticipant(ctx, op.Name)
		if err != nil {
			return err
		}
		f.mapID(op.LocalID, p.ID)
		return nil

	case OpRemoveParticipant:
		return f.upstream.RemoveParticipant(ctx, f.resolve(op.ParticipantID))

	case OpAddExpense:
		if op.Expense == nil {
			return fmt.Errorf("%w: queued expense is empty", ledger.ErrInvalidInput)
		}
		in := *op.Expense
		in.PaidBy = f.resolve(in.PaidBy)
		in.Participants = make([]string, len(op.Expense.Participants))
		for i, id := range op.Expense.Participants {
			in.Participants[i] = f.resolve(id)
		}
		e, err := f.upstream.AddExpense(ctx, in)
		if err != nil {
			return err
		}
		f.mapID(op.LocalID, e.ID)
		return nil

	default:
		return fmt.Errorf("%w: unknown operation %q", ledger.ErrInvalidInput, op.Kind)
	}
}

func (f *Failover) mapID(local, remote string) {
	if local == "" {
		return
	}
	if f.queue.IDs == nil {
		f.queue.IDs = make(map[string]string)
	}
	f.queue.IDs[local] = remote
}

func (f *Failover) resolve(id string) string {
	if remote, ok := f.queue.IDs[id]; ok {
		return remote
	}
	return id
}

func (f *Failover) enqueue(op Op) error {
	f.queue.Ops = append(f.queue.Ops, op)
	if err := f.outbox.Save(f.queue); err != nil {
		return fmt.Errorf("applied locally but failed to queue: %w", err)
	}
	f.logger.Info("Queued offline change", "kind", op.Kind, "pending", len(f.queue.Ops))
	return nil
}

// refresh replaces the mirror with the upstream state.
func (f *Failover) refresh(ctx context.Context) error {
	state, err := f.upstream.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch state: %w", err)
	}
	if err := f.local.Restore(ctx, state); err != nil {
		return fmt.Errorf("failed to update local copy: %w", err)
	}
	f.fresh = true
	return nil
}

func (f *Failover) refreshQuietly(ctx context.Context) {
	if err := f.refresh(ctx); err != nil {
		f.logger.WarnContext(ctx, "Local copy not refreshed", "error", err)
	}
}

func (f *Failover) wentOffline(ctx context.Context, op string, err error) {
	f.fresh = false
	f.logger.WarnContext(ctx, "Server unreachable, using local copy", "op", op, "error", err)
}

// failsOver reports whether err means upstream could not be used, as opposed
// to upstream refusing the request.
func failsOver(err error) bool {
	return err != nil &&
		!errors.Is(err, ledger.ErrInvalidInput) &&
		!errors.Is(err, context.Canceled)
}
