package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgr/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Post the vouchers of a journal export",
	Long: `Reads a semicolon separated journal export and posts one voucher per
group of consecutive rows sharing date, voucher type and reference. A voucher
that fails is reported and the rest are still posted.`,
	Example: "  ledgerctl import --tenant <id> daybook.csv",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return withTenant(cmd, func(ctx context.Context, e *env, tenantID uuid.UUID) error {
			result, err := e.services.Importer.Import(ctx, tenantID, importer.Format(format), f, nil)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range result.Created {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Row, p.Reference, p.VoucherNumber)
			}

			for _, fl := range result.Failed {
				fmt.Fprintf(tw, "%d\t%s\tFAILED: %s\n", fl.Row, fl.Reference, fl.Error)
			}

			tw.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "%s layout, %s: %d posted, %d failed\n",
				result.Layout, result.Charset, len(result.Created), len(result.Failed))

			if len(result.Failed) > 0 {
				return fmt.Errorf("%d vouchers failed", len(result.Failed))
			}

			return nil
		})
	},
}

func init() {
	importCmd.Flags().String("format", string(importer.FormatJournal), "Import format")
	rootCmd.AddCommand(importCmd)
}
