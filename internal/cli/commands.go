package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/utils"
	"github.com/spf13/cobra"
)

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print invoice counts per status and the total, paid and pending sums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stats, err := rt.app.Services.Reporting.GetInvoiceStats(ctx)
			if err != nil {
				return err
			}
			prefs, err := rt.app.Services.Profile.Preferences(ctx)
			if err != nil {
				return err
			}
			res := dto.ToInvoiceStatsResponse(*stats, prefs.DefaultCurrency)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Invoices:\t%d\n", res.Total)
			fmt.Fprintf(w, "Draft:\t%d\n", res.Draft)
			fmt.Fprintf(w, "Sent:\t%d\n", res.Sent)
			fmt.Fprintf(w, "Paid:\t%d\n", res.Paid)
			fmt.Fprintf(w, "Overdue:\t%d\n", res.Overdue)
			fmt.Fprintf(w, "Total amount:\t%s\n", res.Formatted.TotalAmount)
			fmt.Fprintf(w, "Paid amount:\t%s\n", res.Formatted.PaidAmount)
			fmt.Fprintf(w, "Pending amount:\t%s\n", res.Formatted.PendingAmount)
			return w.Flush()
		},
	}
}

func newInvoicesCmd(rt *runtime) *cobra.Command {
	invoicesCmd := &cobra.Command{
		Use:   "invoices",
		Short: "List invoices and move them through their lifecycle",
	}
	invoicesCmd.AddCommand(
		newInvoicesListCmd(rt),
		newInvoicesSendCmd(rt),
		newInvoicesPayCmd(rt),
	)
	return invoicesCmd
}

func newInvoicesListCmd(rt *runtime) *cobra.Command {
	var params dto.ListInvoicesParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices, newest issue date first",
		Example: `  invoicectl invoices list --status overdue
  invoicectl invoices list --search acme --sort asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.app.Services.Invoice.ListInvoices(cmd.Context(), params)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tSTATUS\tISSUED\tDUE\tTOTAL")
			for _, inv := range res.Invoices {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.ID, inv.InvoiceNumber, inv.ClientName, inv.Status, inv.IssueDate, inv.DueDate, inv.FormattedTotal)
			}
			if res.NextToken != nil {
				fmt.Fprintf(w, "\nmore results: --next-token %s\n", *res.NextToken)
			}
			return w.Flush()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&params.Status, "status", "all", "all, draft, sent, paid or overdue")
	flags.StringVar(&params.Search, "search", "", "case-insensitive match on number or client name")
	flags.StringVar(&params.Sort, "sort", "desc", "sort by issue date: asc or desc")
	flags.IntVar(&params.Limit, "limit", 0, "page size (0 lists everything)")
	flags.StringVar(&params.NextToken, "next-token", "", "continue from a previous page")
	return cmd
}

func newInvoicesSendCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "send <invoice-id>",
		Short: "Mark an invoice as sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := rt.app.Services.Invoice.MarkAsSent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if inv == nil {
				return fmt.Errorf("invoice %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", inv.InvoiceNumber, inv.Status)
			return nil
		},
	}
}

func newInvoicesPayCmd(rt *runtime) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "pay <invoice-id>",
		Short: "Mark an invoice as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paidDate *time.Time
			if date != "" {
				d, err := domain.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, use YYYY-MM-DD", date)
				}
				paidDate = &d
			}
			inv, err := rt.app.Services.Invoice.MarkAsPaid(cmd.Context(), args[0], paidDate)
			if err != nil {
				return err
			}
			if inv == nil {
				return fmt.Errorf("invoice %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s (%s)\n",
				inv.InvoiceNumber, inv.Status, utils.FormatAmount(inv.Total, inv.ClientCurrency))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "paid date (YYYY-MM-DD), default today")
	return cmd
}

func newSweepOverdueCmd(rt *runtime) *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Mark sent invoices whose due date has passed as overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now().UTC()
			if asOf != "" {
				d, err := domain.ParseDate(asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q, use YYYY-MM-DD", asOf)
				}
				when = d
			}
			changed, err := rt.app.Services.Invoice.SweepOverdue(cmd.Context(), when)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, inv := range changed {
				fmt.Fprintf(out, "%s overdue since %s\n", inv.InvoiceNumber, inv.DueDate.Format(domain.DateLayout))
			}
			fmt.Fprintf(out, "%d invoice(s) marked overdue\n", len(changed))
			return nil
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD), default today")
	return cmd
}

func newNextNumberCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "next-number",
		Short: "Preview the number the next invoice will receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := rt.app.Services.Invoice.GenerateInvoiceNumber(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), number)
			return nil
		},
	}
}
