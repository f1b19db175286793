package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// Ensure Service implements Ledger
var _ Ledger = (*Service)(nil)

// Service implements Ledger on top of a storage.Store.
type Service struct {
	store     storage.Store
	newID     func() string
	now       func() time.Time
	publisher events.Publisher
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator overrides how participant and expense ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// WithPublisher sets the destination for domain events.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// LocalIDs generates ids for records created while offline, so they can be
// told apart from server-assigned ids.
func LocalIDs() string {
	return "local-" + uuid.NewString()
}

// NewService creates a Service backed by store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		newID:     uuid.NewString,
		now:       time.Now,
		publisher: events.Noop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "ledger")
	return s
}

// AddParticipant creates a participant named name (trimmed).
func (s *Service) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, invalid("name", "must not be empty")
	}

	p := models.Participant{ID: s.newID(), Name: name}
	err := s.store.Update(ctx, func(st models.State) (models.State, error) {
		st.Participants = append(st.Participants, p)
		return st, nil
	})
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to add participant: %w", err)
	}

	s.logger.InfoContext(ctx, "Participant added", "participant_id", p.ID)
	s.publish(ctx, events.Event{Type: events.TypeParticipantAdded, ParticipantID: p.ID})
	return p, nil
}

// RemoveParticipant deletes the participant and drops or shrinks the
// expenses that referenced it.
func (s *Service) RemoveParticipant(ctx context.Context, id string) error {
	var removed bool
	var dropped, shrunk int

	err := s.store.Update(ctx, func(st models.State) (models.State, error) {
		participants, expenses := calculator.RemoveParticipant(st.Participants, st.Expenses, id)
		removed = len(participants) != len(st.Participants)
		dropped = len(st.Expenses) - len(expenses)
		shrunk = countShrunk(st.Expenses, expenses)
		return models.State{Participants: participants, Expenses: expenses}, nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	if !removed && dropped == 0 && shrunk == 0 {
		s.logger.DebugContext(ctx, "Participant not found, nothing to remove", "participant_id", id)
		return nil
	}

	s.logger.InfoContext(ctx, "Participant removed",
		"participant_id", id,
		"dropped_expenses", dropped,
		"shrunk_expenses", shrunk,
	)
	s.publish(ctx, events.Event{
		Type:          events.TypeParticipantRemoved,
		ParticipantID: id,
		Dropped:       dropped,
		Shrunk:        shrunk,
	})
	return nil
}

// AddExpense validates in and records it. The payer and every beneficiary
// must exist when the expense is created.
func (s *Service) AddExpense(ctx context.Context, in NewExpense) (models.Expense, error) {
	e, err := s.normalize(in)
	if err != nil {
		return models.Expense{}, err
	}

	err = s.store.Update(ctx, func(st models.State) (models.State, error) {
		if _, ok := st.Participant(e.PaidBy); !ok {
			return st, &ValidationError{
				Field:  "paidBy",
				Reason: fmt.Sprintf("unknown participant %q", e.PaidBy),
				Err:    ErrUnknownParticipant,
			}
		}
		for _, id := range e.Participants {
			if _, ok := st.Participant(id); !ok {
				return st, &ValidationError{
					Field:  "participants",
					Reason: fmt.Sprintf("unknown participant %q", id),
					Err:    ErrUnknownParticipant,
				}
			}
		}
		st.Expenses = append(st.Expenses, e)
		return st, nil
	})
	if err != nil {
		return models.Expense{}, fmt.Errorf("failed to add expense: %w", err)
	}

	s.logger.InfoContext(ctx, "Expense added",
		"expense_id", e.ID,
		"amount", e.Amount,
		"paid_by", e.PaidBy,
		"beneficiaries", len(e.Participants),
	)
	s.publish(ctx, events.Event{
		Type:          events.TypeExpenseAdded,
		ExpenseID:     e.ID,
		ParticipantID: e.PaidBy,
		Amount:        e.Amount,
	})
	return e, nil
}

// normalize trims and checks the expense fields that need no state.
func (s *Service) normalize(in NewExpense) (models.Expense, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return models.Expense{}, invalid("description", "must not be empty")
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return models.Expense{}, invalid("amount", "must be a positive number")
	}
	paidBy := strings.TrimSpace(in.PaidBy)
	if paidBy == "" {
		return models.Expense{}, invalid("paidBy", "must not be empty")
	}

	// Beneficiaries form a set; keep the first occurrence of each id.
	seen := make(map[string]bool, len(in.Participants))
	beneficiaries := make([]string, 0, len(in.Participants))
	for _, id := range in.Participants {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		beneficiaries = append(beneficiaries, id)
	}
	if len(beneficiaries) == 0 {
		return models.Expense{}, invalid("participants", "must include at least one participant")
	}

	return models.Expense{
		ID:           s.newID(),
		Description:  description,
		Amount:       in.Amount,
		PaidBy:       paidBy,
		Participants: beneficiaries,
		CreatedAt:    s.now().Unix(),
	}, nil
}

// Participants returns all participants in insertion order.
func (s *Service) Participants(ctx context.Context) ([]models.Participant, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return st.Participants, nil
}

// Expenses returns all expenses in insertion order.
func (s *Service) Expenses(ctx context.Context) ([]models.Expense, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return st.Expenses, nil
}

// Balances computes the balance sheet from a consistent snapshot.
func (s *Service) Balances(ctx context.Context) (models.BalanceSheet, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return s.balances(ctx, st)
}

// Summary computes balances, settle-up suggestions and spending totals.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load state: %w", err)
	}
	sheet, err := s.balances(ctx, st)
	if err != nil {
		return Summary{}, err
	}
	total, byPayer := calculator.Totals(st.Expenses)
	return Summary{
		Balances:    sheet,
		Settlements: calculator.SuggestSettlements(sheet),
		TotalSpent:  total,
		PaidBy:      byPayer,
	}, nil
}

// Snapshot returns the full current state.
func (s *Service) Snapshot(ctx context.Context) (models.State, error) {
	return s.store.Snapshot(ctx)
}

// Restore replaces the whole state, e.g. with a copy fetched from a server.
func (s *Service) Restore(ctx context.Context, state models.State) error {
	next := state.Clone()
	return s.store.Update(ctx, func(models.State) (models.State, error) {
		return next, nil
	})
}

func (s *Service) balances(ctx context.Context, st models.State) (models.BalanceSheet, error) {
	if stale := calculator.StaleReferences(st.Participants, st.Expenses); len(stale) > 0 {
		s.logger.WarnContext(ctx, "Expenses reference unknown participants", "ids", stale)
	}
	sheet, err := calculator.ComputeBalances(st.Participants, st.Expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balances: %w", err)
	}
	return sheet, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event", "type", event.Type, "error", err)
	}
}

// countShrunk counts expenses present in both lists whose beneficiary set
// got smaller.
func countShrunk(before, after []models.Expense) int {
	sizes := make(map[string]int, len(before))
	for _, e := range before {
		sizes[e.ID] = len(e.Participants)
	}
	n := 0
	for _, e := range after {
		if size, ok := sizes[e.ID]; ok && len(e.Participants) < size {
			n++
		}
	}
	return n
}
