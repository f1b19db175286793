package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/evensplit/internal/ledger"
)

func newExpensesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"e"},
		Short:   "Record and list expenses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(s *session) error {
				participants, err := s.Participants(cmd.Context())
				if err != nil {
					return err
				}
				expenses, err := s.Expenses(cmd.Context())
				if err != nil {
					return err
				}
				names := newDirectory(participants)

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tPAID BY\tFOR")
				for _, e := range expenses {
					beneficiaries := make([]string, len(e.Participants))
					for i, id := range e.Participants {
						beneficiaries[i] = names.name(id)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						time.Unix(e.CreatedAt, 0).Format(time.DateOnly),
						e.Description,
						money(e.Amount),
						names.name(e.PaidBy),
						strings.Join(beneficiaries, ", "),
					)
				}
				return w.Flush()
			})
		},
	})

	var (
		description string
		amount      string
		paidBy      string
		forIDs      []string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record an expense split evenly among --for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			return withSession(cmd, opts, func(s *session) error {
				participants, err := s.Participants(cmd.Context())
				if err != nil {
					return err
				}
				in := ledger.NewExpense{
					Description: description,
					Amount:      value,
					PaidBy:      resolve(participants, paidBy),
				}
				for _, ref := range forIDs {
					in.Participants = append(in.Participants, resolve(participants, ref))
				}

				e, err := s.AddExpense(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s split %d ways (%s)\n",
					e.Description, money(e.Amount), len(e.Participants), e.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&description, "desc", "", "What the money was spent on.")
	add.Flags().StringVar(&amount, "amount", "", "Amount paid, e.g. 12.50.")
	add.Flags().StringVar(&paidBy, "paid-by", "", "Participant who paid (id or name).")
	add.Flags().StringSliceVar(&forIDs, "for", nil, "Participants sharing the cost (ids or names, comma separated).")
	for _, name := range []string{"desc", "amount", "paid-by", "for"} {
		_ = add.MarkFlagRequired(name)
	}
	cmd.AddCommand(add)

	return cmd
}
