package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/models"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	ledger ledger.Ledger
}

// NewExpenseService creates a new ExpenseService backed by the given ledger.
func NewExpenseService(l ledger.Ledger) *ExpenseService {
	return &ExpenseService{ledger: l}
}

// AddParticipant creates a new participant.
func (s *ExpenseService) AddParticipant(ctx context.Context, req *connect.Request[pb.AddParticipantRequest]) (*connect.Response[pb.AddParticipantResponse], error) {
	slog.Info("AddParticipant request received", "name", req.Msg.Name)

	p, err := s.ledger.AddParticipant(ctx, req.Msg.Name)
	if err != nil {
		slog.Error("AddParticipant failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.AddParticipantResponse{
		Participant: toProtoParticipant(p),
	}), nil
}

// RemoveParticipant deletes a participant. Unknown ids succeed.
func (s *ExpenseService) RemoveParticipant(ctx context.Context, req *connect.Request[pb.RemoveParticipantRequest]) (*connect.Response[pb.RemoveParticipantResponse], error) {
	slog.Info("RemoveParticipant request received", "participant_id", req.Msg.ParticipantId)

	if err := s.ledger.RemoveParticipant(ctx, req.Msg.ParticipantId); err != nil {
		slog.Error("RemoveParticipant failed", "participant_id", req.Msg.ParticipantId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.RemoveParticipantResponse{}), nil
}

// ListParticipants returns every participant.
func (s *ExpenseService) ListParticipants(ctx context.Context, req *connect.Request[pb.ListParticipantsRequest]) (*connect.Response[pb.ListParticipantsResponse], error) {
	participants, err := s.ledger.Participants(ctx)
	if err != nil {
		slog.Error("ListParticipants failed", "error", err)
		return nil, toConnectError(err)
	}

	// Convert to proto format
	out := make([]*pb.Participant, len(participants))
	for i, p := range participants {
		out[i] = toProtoParticipant(p)
	}

	slog.Debug("ListParticipants successful", "count", len(out))

	return connect.NewResponse(&pb.ListParticipantsResponse{Participants: out}), nil
}

// AddExpense records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[pb.AddExpenseRequest]) (*connect.Response[pb.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"description", req.Msg.Description,
		"amount", req.Msg.Amount,
		"paid_by", req.Msg.PaidBy,
		"participants_count", len(req.Msg.Participants),
	)

	e, err := s.ledger.AddExpense(ctx, ledger.NewExpense{
		Description:  req.Msg.Description,
		Amount:       req.Msg.Amount,
		PaidBy:       req.Msg.PaidBy,
		Participants: req.Msg.Participants,
	})
	if err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.AddExpenseResponse{
		Expense: toProtoExpense(e),
	}), nil
}

// ListExpenses returns every expense.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	expenses, err := s.ledger.Expenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e)
	}

	slog.Debug("ListExpenses successful", "count", len(out))

	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// GetSummary returns the balance sheet, settle-up suggestions and totals.
func (s *ExpenseService) GetSummary(ctx context.Context, req *connect.Request[pb.GetSummaryRequest]) (*connect.Response[pb.GetSummaryResponse], error) {
	summary, err := s.ledger.Summary(ctx)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, toConnectError(err)
	}

	settlements := make([]*pb.Settlement, len(summary.Settlements))
	for i, st := range summary.Settlements {
		settlements[i] = &pb.Settlement{From: st.From, To: st.To, Amount: st.Amount}
	}

	return connect.NewResponse(&pb.GetSummaryResponse{
		Balances:    summary.Balances,
		Settlements: settlements,
		TotalSpent:  summary.TotalSpent,
		PaidBy:      summary.PaidBy,
	}), nil
}

// toConnectError maps ledger errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toProtoParticipant(p models.Participant) *pb.Participant {
	return &pb.Participant{Id: p.ID, Name: p.Name}
}

func toProtoExpense(e models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		Participants: e.Participants,
		CreatedAt:    timestamppb.New(time.Unix(e.CreatedAt, 0)),
	}
}
