package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/evensplit/internal/client"
	"github.com/mmynk/evensplit/internal/ledger"
	"github.com/mmynk/evensplit/internal/storage/memory"
	"github.com/mmynk/evensplit/pkg/logging"
)

const (
	snapshotFile = "snapshot.json"
	outboxFile   = "outbox.json"
)

type options struct {
	server  string
	cache   string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "evensplit",
		Short:         "Track shared expenses and who owes whom",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.SetupWithLevel(level)
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("EVENSPLIT_SERVER", "http://localhost:8080"), "Server base URL.")
	root.PersistentFlags().StringVar(&opts.cache, "cache", defaultCacheDir(), "Directory for the offline copy and pending changes.")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "Per-request timeout before working offline.")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging.")

	root.AddCommand(
		newParticipantsCmd(opts),
		newExpensesCmd(opts),
		newBalancesCmd(opts),
		newSyncCmd(opts),
	)
	return root
}

// session is an open ledger plus the resources behind it.
type session struct {
	*client.Failover
	store *memory.Store
}

func (s *session) Close() error {
	return s.store.Close()
}

func (o *options) open() (*session, error) {
	store, err := memory.Open(filepath.Join(o.cache, snapshotFile))
	if err != nil {
		return nil, err
	}
	local := ledger.NewService(store, ledger.WithIDGenerator(ledger.LocalIDs))
	remote := client.NewRemote(&http.Client{Timeout: o.timeout}, o.server)

	f, err := client.NewFailover(remote, local, client.FileOutbox{Path: filepath.Join(o.cache, outboxFile)})
	if err != nil {
		store.Close()
		return nil, err
	}
	return &session{Failover: f, store: store}, nil
}

// withSession opens the ledger, runs fn and reports changes still waiting
// for the server.
func withSession(cmd *cobra.Command, opts *options, fn func(s *session) error) error {
	s, err := opts.open()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s); err != nil {
		return err
	}
	if n := s.Pending(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "offline: %d change(s) waiting to sync\n", n)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".evensplit"
	}
	return filepath.Join(dir, "evensplit")
}
