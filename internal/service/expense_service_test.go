package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/storage/memory"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

// setupTestServer creates a test server backed by a temporary SQLite database
func setupTestServer(t *testing.T) (protoconnect.ExpenseServiceClient, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	path, handler := protoconnect.NewExpenseServiceHandler(NewExpenseService(ledger.NewService(store)))
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)

	client := protoconnect.NewExpenseServiceClient(
		http.DefaultClient,
		server.URL,
	)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return client, cleanup
}

func addParticipant(t *testing.T, client protoconnect.ExpenseServiceClient, name string) string {
	t.Helper()
	resp, err := client.AddParticipant(context.Background(), connect.NewRequest(&pb.AddParticipantRequest{Name: name}))
	if err != nil {
		t.Fatalf("AddParticipant(%q) failed: %v", name, err)
	}
	return resp.Msg.Participant.Id
}

func TestAddParticipant(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.AddParticipant(context.Background(), connect.NewRequest(&pb.AddParticipantRequest{
		Name: "  Alice ",
	}))
	if err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}

	if resp.Msg.Participant == nil {
		t.Fatal("expected participant in response")
	}
	if resp.Msg.Participant.Id == "" {
		t.Error("expected non-empty participant ID")
	}
	if resp.Msg.Participant.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", resp.Msg.Participant.Name)
	}
}

func TestAddParticipantRejectsEmptyName(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.AddParticipant(context.Background(), connect.NewRequest(&pb.AddParticipantRequest{Name: "   "}))
	if err == nil {
		t.Fatal("expected error for empty name")
	}
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected CodeInvalidArgument, got %v", connect.CodeOf(err))
	}
}

func TestAddExpenseAndSummary(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addParticipant(t, client, "A")
	b := addParticipant(t, client, "B")
	c := addParticipant(t, client, "C")

	expResp, err := client.AddExpense(ctx, connect.NewRequest(&pb.AddExpenseRequest{
		Description:  "Dinner",
		Amount:       90,
		PaidBy:       a,
		Participants: []string{a, b, c},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if expResp.Msg.Expense.Id == "" || expResp.Msg.Expense.GetCreatedAt().GetSeconds() == 0 {
		t.Errorf("expense missing id or timestamp: %+v", expResp.Msg.Expense)
	}

	summary, err := client.GetSummary(ctx, connect.NewRequest(&pb.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}

	want := map[string]float64{a: 60, b: -30, c: -30}
	for id, v := range want {
		if math.Abs(summary.Msg.Balances[id]-v) > 0.01 {
			t.Errorf("balance[%s]: expected %v, got %v", id, v, summary.Msg.Balances[id])
		}
	}
	if summary.Msg.TotalSpent != 90 {
		t.Errorf("total spent: expected 90, got %v", summary.Msg.TotalSpent)
	}
	if len(summary.Msg.Settlements) != 2 {
		t.Errorf("settlements: expected 2, got %d", len(summary.Msg.Settlements))
	}
}

func TestAddExpenseValidation(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addParticipant(t, client, "A")

	tests := []struct {
		name string
		req  *pb.AddExpenseRequest
	}{
		{"empty description", &pb.AddExpenseRequest{Description: "", Amount: 10, PaidBy: a, Participants: []string{a}}},
		{"zero amount", &pb.AddExpenseRequest{Description: "x", Amount: 0, PaidBy: a, Participants: []string{a}}},
		{"no beneficiaries", &pb.AddExpenseRequest{Description: "x", Amount: 10, PaidBy: a}},
		{"unknown payer", &pb.AddExpenseRequest{Description: "x", Amount: 10, PaidBy: "ghost", Participants: []string{a}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddExpense(ctx, connect.NewRequest(tt.req))
			if err == nil {
				t.Fatal("expected error")
			}
			if connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Errorf("expected CodeInvalidArgument, got %v", connect.CodeOf(err))
			}
		})
	}
}

func TestRemoveParticipantCascades(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addParticipant(t, client, "A")
	b := addParticipant(t, client, "B")
	c := addParticipant(t, client, "C")

	for _, req := range []*pb.AddExpenseRequest{
		{Description: "Dinner", Amount: 90, PaidBy: a, Participants: []string{a, b, c}},
		{Description: "Taxi", Amount: 20, PaidBy: b, Participants: []string{a, c}},
	} {
		if _, err := client.AddExpense(ctx, connect.NewRequest(req)); err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}
	}

	if _, err := client.RemoveParticipant(ctx, connect.NewRequest(&pb.RemoveParticipantRequest{ParticipantId: b})); err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}

	// Removing again is not an error
	if _, err := client.RemoveParticipant(ctx, connect.NewRequest(&pb.RemoveParticipantRequest{ParticipantId: b})); err != nil {
		t.Fatalf("second RemoveParticipant failed: %v", err)
	}

	participants, err := client.ListParticipants(ctx, connect.NewRequest(&pb.ListParticipantsRequest{}))
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(participants.Msg.Participants) != 2 {
		t.Errorf("participants: expected 2, got %d", len(participants.Msg.Participants))
	}

	expenses, err := client.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(expenses.Msg.Expenses) != 1 {
		t.Fatalf("expenses: expected 1 (taxi paid by B dropped), got %d", len(expenses.Msg.Expenses))
	}
	dinner := expenses.Msg.Expenses[0]
	if dinner.Description != "Dinner" || len(dinner.Participants) != 2 {
		t.Errorf("unexpected remaining expense: %+v", dinner)
	}

	summary, err := client.GetSummary(ctx, connect.NewRequest(&pb.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if _, ok := summary.Msg.Balances[b]; ok {
		t.Error("removed participant still has a balance")
	}
	if math.Abs(summary.Msg.Balances[a]-45) > 0.01 || math.Abs(summary.Msg.Balances[c]+45) > 0.01 {
		t.Errorf("balances after removal: %v", summary.Msg.Balances)
	}
}

func TestEmptyLedger(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	summary, err := client.GetSummary(context.Background(), connect.NewRequest(&pb.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if len(summary.Msg.Balances) != 0 {
		t.Errorf("expected no balances, got %v", summary.Msg.Balances)
	}
}

// TestPlainJSONRequests covers clients that speak the Connect protocol with
// hand-written JSON bodies (curl, the browser frontend).
func TestPlainJSONRequests(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := ledger.NewService(memory.New(), ledger.WithClock(func() time.Time { return now }))
	path, handler := protoconnect.NewExpenseServiceHandler(NewExpenseService(svc))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	post := func(procedure, body string, out any) int {
		t.Helper()
		resp, err := http.Post(server.URL+procedure, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s failed: %v", procedure, err)
		}
		defer resp.Body.Close()
		if out != nil && resp.StatusCode == http.StatusOK {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				t.Fatalf("decode %s response: %v", procedure, err)
			}
		}
		return resp.StatusCode
	}

	var added struct {
		Participant struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"participant"`
	}
	if code := post(protoconnect.ExpenseServiceAddParticipantProcedure, `{"name":"Alice"}`, &added); code != http.StatusOK {
		t.Fatalf("AddParticipant: status %d", code)
	}
	if added.Participant.ID == "" || added.Participant.Name != "Alice" {
		t.Fatalf("unexpected participant: %+v", added.Participant)
	}

	var expense struct {
		Expense struct {
			PaidBy    string `json:"paidBy"`
			CreatedAt string `json:"createdAt"`
		} `json:"expense"`
	}
	body := `{"description":"Lunch","amount":12.5,"paidBy":"` + added.Participant.ID + `","participants":["` + added.Participant.ID + `"]}`
	if code := post(protoconnect.ExpenseServiceAddExpenseProcedure, body, &expense); code != http.StatusOK {
		t.Fatalf("AddExpense: status %d", code)
	}
	if expense.Expense.PaidBy != added.Participant.ID {
		t.Errorf("paidBy: expected %s, got %s", added.Participant.ID, expense.Expense.PaidBy)
	}
	if expense.Expense.CreatedAt != "2024-03-01T12:00:00Z" {
		t.Errorf("createdAt: expected RFC 3339 timestamp, got %q", expense.Expense.CreatedAt)
	}

	if code := post(protoconnect.ExpenseServiceAddParticipantProcedure, `{"name":""}`, nil); code != http.StatusBadRequest {
		t.Errorf("empty name: expected status 400, got %d", code)
	}
}
