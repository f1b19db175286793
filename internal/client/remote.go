// Package client talks to an evensplit server and keeps working when the
// server cannot be reached.
package client

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/models"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

// Ensure Remote implements Ledger
var _ ledger.Ledger = (*Remote)(nil)

// Remote is a ledger served by an evensplit server.
type Remote struct {
	client protoconnect.ExpenseServiceClient
}

// NewRemote creates a Remote for the server at baseURL.
func NewRemote(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Remote {
	return &Remote{client: protoconnect.NewExpenseServiceClient(httpClient, baseURL, opts...)}
}

func (r *Remote) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	resp, err := r.client.AddParticipant(ctx, connect.NewRequest(&pb.AddParticipantRequest{Name: name}))
	if err != nil {
		return models.Participant{}, fromConnectError(err)
	}
	if resp.Msg.Participant == nil {
		return models.Participant{}, errors.New("server returned no participant")
	}
	return fromProtoParticipant(resp.Msg.Participant), nil
}

func (r *Remote) RemoveParticipant(ctx context.Context, id string) error {
	_, err := r.client.RemoveParticipant(ctx, connect.NewRequest(&pb.RemoveParticipantRequest{ParticipantId: id}))
	return fromConnectError(err)
}

func (r *Remote) AddExpense(ctx context.Context, in ledger.NewExpense) (models.Expense, error) {
	resp, err := r.client.AddExpense(ctx, connect.NewRequest(&pb.AddExpenseRequest{
		Description:  in.Description,
		Amount:       in.Amount,
		PaidBy:       in.PaidBy,
		Participants: in.Participants,
	}))
	if err != nil {
		return models.Expense{}, fromConnectError(err)
	}
	if resp.Msg.Expense == nil {
		return models.Expense{}, errors.New("server returned no expense")
	}
	return fromProtoExpense(resp.Msg.Expense), nil
}

func (r *Remote) Participants(ctx context.Context) ([]models.Participant, error) {
	resp, err := r.client.ListParticipants(ctx, connect.NewRequest(&pb.ListParticipantsRequest{}))
	if err != nil {
		return nil, fromConnectError(err)
	}
	out := make([]models.Participant, 0, len(resp.Msg.Participants))
	for _, p := range resp.Msg.Participants {
		if p != nil {
			out = append(out, fromProtoParticipant(p))
		}
	}
	return out, nil
}

func (r *Remote) Expenses(ctx context.Context) ([]models.Expense, error) {
	resp, err := r.client.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{}))
	if err != nil {
		return nil, fromConnectError(err)
	}
	out := make([]models.Expense, 0, len(resp.Msg.Expenses))
	for _, e := range resp.Msg.Expenses {
		if e != nil {
			out = append(out, fromProtoExpense(e))
		}
	}
	return out, nil
}

func (r *Remote) Balances(ctx context.Context) (models.BalanceSheet, error) {
	summary, err := r.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Balances, nil
}

func (r *Remote) Summary(ctx context.Context) (ledger.Summary, error) {
	resp, err := r.client.GetSummary(ctx, connect.NewRequest(&pb.GetSummaryRequest{}))
	if err != nil {
		return ledger.Summary{}, fromConnectError(err)
	}

	balances := make(models.BalanceSheet, len(resp.Msg.Balances))
	for id, v := range resp.Msg.Balances {
		balances[id] = v
	}
	settlements := make([]models.Settlement, 0, len(resp.Msg.Settlements))
	for _, s := range resp.Msg.Settlements {
		if s != nil {
			settlements = append(settlements, models.Settlement{From: s.From, To: s.To, Amount: s.Amount})
		}
	}
	paidBy := resp.Msg.PaidBy
	if paidBy == nil {
		paidBy = map[string]float64{}
	}
	return ledger.Summary{
		Balances:    balances,
		Settlements: settlements,
		TotalSpent:  resp.Msg.TotalSpent,
		PaidBy:      paidBy,
	}, nil
}

// State fetches participants and expenses. The two lists come from separate
// calls and are not an atomic snapshot.
func (r *Remote) State(ctx context.Context) (models.State, error) {
	participants, err := r.Participants(ctx)
	if err != nil {
		return models.State{}, err
	}
	expenses, err := r.Expenses(ctx)
	if err != nil {
		return models.State{}, err
	}
	return models.State{Participants: participants, Expenses: expenses}, nil
}

// fromConnectError turns invalid_argument back into ledger.ErrInvalidInput.
func fromConnectError(err error) error {
	if err == nil {
		return nil
	}
	if connect.CodeOf(err) == connect.CodeInvalidArgument {
		msg := err.Error()
		var cerr *connect.Error
		if errors.As(err, &cerr) {
			msg = cerr.Message()
		}
		return fmt.Errorf("%w: %s", ledger.ErrInvalidInput, msg)
	}
	return err
}

func fromProtoParticipant(p *pb.Participant) models.Participant {
	return models.Participant{ID: p.Id, Name: p.Name}
}

func fromProtoExpense(e *pb.Expense) models.Expense {
	participants := e.Participants
	if participants == nil {
		participants = []string{}
	}
	return models.Expense{
		ID:           e.Id,
		Description:  e.Description,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		Participants: participants,
		CreatedAt:    e.GetCreatedAt().GetSeconds(),
	}
}
