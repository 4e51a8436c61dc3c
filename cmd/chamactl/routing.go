package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/pgrepo"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	routingThreshold       string
	routingBankAccount     string
	routingMpesaNumber     string
	routingPlatformAccount string
)

func routingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routing",
		Short: "Show or update the pool split routing config",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print current routing config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoutingRepo(cmd.Context(), func(ctx context.Context, repo *pgrepo.RoutingRepository) error {
				routing, err := repo.Get(ctx)
				if err != nil {
					return fmt.Errorf("get routing: %w", err)
				}
				printRouting(cmd.OutOrStdout(), routing)
				return nil
			})
		},
	})

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Replace routing config",
		Long: `Replace the pool split routing config.

Pool amounts strictly above the threshold go to the bank account, the rest to the M-Pesa number.

Example:
  chamactl routing set --threshold 1000 --bank 0110123456 --mpesa 254700000000 --platform 600000`,
		Args: cobra.NoArgs,
		RunE: runRoutingSet,
	}
	setCmd.Flags().StringVar(&routingThreshold, "threshold", "", "pool amount threshold in KES")
	setCmd.Flags().StringVar(&routingBankAccount, "bank", "", "bank account for large pool amounts")
	setCmd.Flags().StringVar(&routingMpesaNumber, "mpesa", "", "M-Pesa number for small pool amounts")
	setCmd.Flags().StringVar(&routingPlatformAccount, "platform", "", "platform fee account")
	for _, name := range []string{"threshold", "bank", "mpesa", "platform"} {
		_ = setCmd.MarkFlagRequired(name)
	}
	cmd.AddCommand(setCmd)

	return cmd
}

func runRoutingSet(cmd *cobra.Command, _ []string) error {
	threshold, err := decimal.NewFromString(routingThreshold)
	if err != nil || !threshold.IsPositive() {
		return fmt.Errorf("threshold must be a positive amount, got %q", routingThreshold)
	}

	return withRoutingRepo(cmd.Context(), func(ctx context.Context, repo *pgrepo.RoutingRepository) error {
		routing, updErr := repo.Update(ctx, repoargs.UpdateRouting{
			Threshold:       threshold,
			BankAccount:     routingBankAccount,
			MpesaNumber:     routingMpesaNumber,
			PlatformAccount: routingPlatformAccount,
		})
		if updErr != nil {
			return fmt.Errorf("update routing: %w", updErr)
		}
		printRouting(cmd.OutOrStdout(), routing)
		return nil
	})
}

func withRoutingRepo(ctx context.Context, fn func(context.Context, *pgrepo.RoutingRepository) error) error {
	if err := requireDSN(); err != nil {
		return err
	}
	pool, err := pgxpool.New(ctx, databaseDSN)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return fn(ctx, pgrepo.NewRoutingRepository(pool))
}

func printRouting(w io.Writer, r *domain.SplitRouting) {
	fmt.Fprintf(w, "threshold:        %s\n", r.Threshold.StringFixed(2))
	fmt.Fprintf(w, "bank account:     %s\n", r.BankAccount)
	fmt.Fprintf(w, "mpesa number:     %s\n", r.MpesaNumber)
	fmt.Fprintf(w, "platform account: %s\n", r.PlatformAccount)
	fmt.Fprintf(w, "updated at:       %s\n", r.UpdatedAt.Format("2006-01-02 15:04:05"))
}
