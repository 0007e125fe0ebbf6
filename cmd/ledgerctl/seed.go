package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default voucher types for a tenant",
	Long: `Creates Payment, Receipt, Contra, Journal, Sales, Purchase, Debit Note and
Credit Note voucher types. Types the tenant already has are left alone.`,
	Example: "  ledgerctl seed --tenant 6f1c1f8e-8a4e-4a43-9d4b-0a8c6a3f2b11",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withTenant(cmd, func(ctx context.Context, e *env, tenantID uuid.UUID) error {
			created, err := e.services.Numbering.SeedDefaults(ctx, tenantID)
			if err != nil {
				return err
			}

			for _, vt := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", vt.ID, vt.Name, vt.Prefix)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d voucher types created\n", len(created))

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
