package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send offline changes to the server and refresh the local copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(s *session) error {
				before := s.Pending()
				if err := s.Reconcile(cmd.Context()); err != nil {
					return fmt.Errorf("sync incomplete: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Synced %d change(s)\n", before)
				return nil
			})
		},
	}
}
