package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newParticipantsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "participants",
		Aliases: []string{"p"},
		Short:   "Manage participants",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(s *session) error {
				participants, err := s.Participants(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, p := range participants {
					fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Name)
				}
				return w.Flush()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				p, err := s.AddParticipant(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id|name>",
		Short: "Remove a participant and the expenses that depended on them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				participants, err := s.Participants(cmd.Context())
				if err != nil {
					return err
				}
				id := resolve(participants, args[0])
				if err := s.RemoveParticipant(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
				return nil
			})
		},
	})

	return cmd
}
