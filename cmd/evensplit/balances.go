package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/evensplit/internal/calculator"
)

func newBalancesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "balances",
		Aliases: []string{"b"},
		Short:   "Show who is owed and who owes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(s *session) error {
				participants, err := s.Participants(cmd.Context())
				if err != nil {
					return err
				}
				summary, err := s.Summary(cmd.Context())
				if err != nil {
					return err
				}
				names := newDirectory(participants)
				out := cmd.OutOrStdout()

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(w, "NAME\tPAID\tBALANCE\t")
				for _, id := range summary.Balances.IDs() {
					fmt.Fprintf(w, "%s\t%s\t%s\t\n", names.name(id), money(summary.PaidBy[id]), signedMoney(summary.Balances[id]))
				}
				if err := w.Flush(); err != nil {
					return err
				}

				fmt.Fprintf(out, "\nTotal spent: %s\n", money(summary.TotalSpent))
				if summary.Balances.Settled(calculator.SettleThreshold) {
					fmt.Fprintln(out, "All settled up.")
					return nil
				}
				fmt.Fprintln(out, "\nTo settle up:")
				for _, st := range summary.Settlements {
					fmt.Fprintf(out, "  %s pays %s %s\n", names.name(st.From), names.name(st.To), money(st.Amount))
				}
				return nil
			})
		},
	}
}
