package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

var closeCmd = &cobra.Command{
	Use:     "close",
	Short:   "Post closing entries that move income and expense to capital",
	Example: "  ledgerctl close --tenant <id> --as-of 2026-03-31",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		asOf, err := dateFlag(cmd, "as-of")
		if err != nil {
			return err
		}

		return withTenant(cmd, func(ctx context.Context, e *env, tenantID uuid.UUID) error {
			v, err := e.services.Period.GenerateClosingEntries(ctx, tenantID, asOf)
			if err != nil {
				return err
			}

			printVoucher(cmd.OutOrStdout(), v)

			return nil
		})
	},
}

var depreciateCmd = &cobra.Command{
	Use:     "depreciate",
	Short:   "Post depreciation on asset ledgers",
	Example: "  ledgerctl depreciate --tenant <id> --as-of 2026-03-31 --rate 15",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		asOf, err := dateFlag(cmd, "as-of")
		if err != nil {
			return err
		}

		var rate *decimal.Decimal

		if raw, _ := cmd.Flags().GetString("rate"); raw != "" {
			r, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("--rate: %w", err)
			}

			rate = &r
		}

		return withTenant(cmd, func(ctx context.Context, e *env, tenantID uuid.UUID) error {
			v, err := e.services.Period.RunDepreciation(ctx, tenantID, asOf, rate)
			if err != nil {
				return err
			}

			printVoucher(cmd.OutOrStdout(), v)

			return nil
		})
	},
}

var carryForwardCmd = &cobra.Command{
	Use:     "carry-forward",
	Short:   "Carry closing balances into the next year's opening balances",
	Example: "  ledgerctl carry-forward --tenant <id> --year-end 2026-03-31 --year-start 2026-04-01",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yearEnd, err := dateFlag(cmd, "year-end")
		if err != nil {
			return err
		}

		yearStart, err := dateFlag(cmd, "year-start")
		if err != nil {
			return err
		}

		return withTenant(cmd, func(ctx context.Context, e *env, tenantID uuid.UUID) error {
			summary, err := e.services.Period.CarryForwardBalances(ctx, tenantID, yearEnd, yearStart)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range summary.Balances {
				fmt.Fprintf(out, "%-30s %14s %s\n", b.LedgerName, b.Amount.StringFixed(money.Places), b.Type)
			}

			fmt.Fprintf(out, "%d opening balances from %s\n", len(summary.Balances), summary.YearStart.Format(time.DateOnly))

			return nil
		})
	},
}

func init() {
	closeCmd.Flags().String("as-of", "", "Last day of the period (YYYY-MM-DD)")
	depreciateCmd.Flags().String("as-of", "", "Date of the depreciation voucher (YYYY-MM-DD)")
	depreciateCmd.Flags().String("rate", "", "Percentage rate; defaults to PERIOD_DEPRECIATION_RATE")
	carryForwardCmd.Flags().String("year-end", "", "Last day of the closed year (YYYY-MM-DD)")
	carryForwardCmd.Flags().String("year-start", "", "First day of the new year (YYYY-MM-DD)")

	for _, c := range []*cobra.Command{closeCmd, depreciateCmd} {
		_ = c.MarkFlagRequired("as-of")
	}

	_ = carryForwardCmd.MarkFlagRequired("year-end")
	_ = carryForwardCmd.MarkFlagRequired("year-start")

	rootCmd.AddCommand(closeCmd, depreciateCmd, carryForwardCmd)
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)

	t, err := calendar.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}

	return t, nil
}

func printVoucher(w io.Writer, v *voucher.Voucher) {
	fmt.Fprintf(w, "%s  %s  %s\n", v.VoucherNumber, v.Date.Format(time.DateOnly), v.Narration)

	for _, e := range v.Entries {
		fmt.Fprintf(w, "  %-6s %-30s %14s\n", e.Type, e.LedgerName, e.Amount.StringFixed(money.Places))
	}
}
