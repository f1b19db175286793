package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/service"
	"github.com/mmynk/evensplit/internal/storage/memory"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

func startServer(t *testing.T) (*ledger.Service, string) {
	t.Helper()
	svc := ledger.NewService(memory.New())
	path, handler := protoconnect.NewExpenseServiceHandler(service.NewExpenseService(svc))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return svc, srv.URL
}

// deadServer returns the URL of a server that is no longer listening.
func deadServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func run(t *testing.T, server, cache string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--server", server, "--cache", cache, "--timeout", "2s"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIOnline(t *testing.T) {
	svc, url := startServer(t)
	cache := t.TempDir()

	out, _, err := run(t, url, cache, "participants", "add", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Alice")

	_, _, err = run(t, url, cache, "participants", "add", "Bob")
	require.NoError(t, err)

	out, _, err = run(t, url, cache, "expenses", "add",
		"--desc", "Dinner", "--amount", "30", "--paid-by", "alice", "--for", "Alice,Bob")
	require.NoError(t, err)
	assert.Contains(t, out, "30.00 split 2 ways")

	out, _, err = run(t, url, cache, "balances")
	require.NoError(t, err)
	assert.Contains(t, out, "+15.00")
	assert.Contains(t, out, "-15.00")
	assert.Contains(t, out, "Bob pays Alice 15.00")
	assert.Contains(t, out, "Total spent: 30.00")

	out, _, err = run(t, url, cache, "expenses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dinner")
	assert.Contains(t, out, "Alice, Bob")

	_, _, err = run(t, url, cache, "participants", "remove", "Bob")
	require.NoError(t, err)

	participants, err := svc.Participants(context.Background())
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Alice", participants[0].Name)
}

func TestCLIRejectsInvalidInput(t *testing.T) {
	_, url := startServer(t)
	cache := t.TempDir()

	_, _, err := run(t, url, cache, "participants", "add", "Alice")
	require.NoError(t, err)

	_, _, err = run(t, url, cache, "expenses", "add",
		"--desc", "Cab", "--amount", "twelve", "--paid-by", "Alice", "--for", "Alice")
	assert.Error(t, err)

	_, _, err = run(t, url, cache, "expenses", "add",
		"--desc", "Cab", "--amount", "12", "--paid-by", "Nobody", "--for", "Alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestCLIOfflineThenSync(t *testing.T) {
	cache := t.TempDir()
	dead := deadServer(t)

	_, stderr, err := run(t, dead, cache, "participants", "add", "Carol")
	require.NoError(t, err)
	assert.Contains(t, stderr, "1 change(s) waiting to sync")

	_, _, err = run(t, dead, cache, "participants", "add", "Dan")
	require.NoError(t, err)
	_, _, err = run(t, dead, cache, "expenses", "add",
		"--desc", "Coffee", "--amount", "8", "--paid-by", "Carol", "--for", "Carol,Dan")
	require.NoError(t, err)

	out, _, err := run(t, dead, cache, "balances")
	require.NoError(t, err)
	assert.Contains(t, out, "Dan pays Carol 4.00")

	_, _, err = run(t, dead, cache, "sync")
	assert.Error(t, err)

	svc, url := startServer(t)
	out, _, err = run(t, url, cache, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Synced 3 change(s)")

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, summary.TotalSpent)
	require.Len(t, summary.Settlements, 1)
	assert.InDelta(t, 4, summary.Settlements[0].Amount, 1e-9)
}

func TestCLIBalancesSettled(t *testing.T) {
	_, url := startServer(t)
	cache := t.TempDir()

	out, _, err := run(t, url, cache, "balances")
	require.NoError(t, err)
	assert.Contains(t, out, "All settled up.")

	for _, name := range []string{"Alice", "Bob"} {
		_, _, err = run(t, url, cache, "participants", "add", name)
		require.NoError(t, err)
	}
	_, _, err = run(t, url, cache, "expenses", "add",
		"--desc", "Dinner", "--amount", "30", "--paid-by", "Alice", "--for", "Alice,Bob")
	require.NoError(t, err)

	out, _, err = run(t, url, cache, "balances")
	require.NoError(t, err)
	assert.NotContains(t, out, "All settled up.")

	_, _, err = run(t, url, cache, "expenses", "add",
		"--desc", "Lunch", "--amount", "30", "--paid-by", "Bob", "--for", "Alice,Bob")
	require.NoError(t, err)

	out, _, err = run(t, url, cache, "balances")
	require.NoError(t, err)
	assert.Contains(t, out, "Total spent: 60.00")
	assert.Contains(t, out, "All settled up.")
	assert.NotContains(t, out, "To settle up:")
}

func TestCLIVerbose(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("LOG_LEVEL", "error")
	_, url := startServer(t)
	cache := t.TempDir()

	_, _, err := run(t, url, cache, "participants", "list")
	require.NoError(t, err)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	_, _, err = run(t, url, cache, "--verbose", "participants", "list")
	require.NoError(t, err)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "12.50", money(12.5))
	assert.Equal(t, "33.33", money(100.0/3))
	assert.Equal(t, "+45.00", signedMoney(45))
	assert.Equal(t, "-0.10", signedMoney(-0.1))
	assert.Equal(t, "0.00", signedMoney(-0.001))

	v, err := parseAmount(" 19.99 ")
	require.NoError(t, err)
	assert.InDelta(t, 19.99, v, 1e-9)

	_, err = parseAmount("1,5")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	participants := []models.Participant{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Sam"},
		{ID: "p3", Name: "sam"},
	}

	assert.Equal(t, "p1", resolve(participants, "p1"))
	assert.Equal(t, "p1", resolve(participants, " alice "))
	assert.Equal(t, "Sam", resolve(participants, "Sam"), "ambiguous names pass through")
	assert.Equal(t, "ghost", resolve(participants, "ghost"))
}
