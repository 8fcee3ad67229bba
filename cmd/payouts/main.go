package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"patisserie_marketplace/internal/app"
	"patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/infrastructure/logger"
	"patisserie_marketplace/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const atLayout = "2006-01-02"

func main() {
	rootCmd := &cobra.Command{
		Use:   "payouts",
		Short: "Operator tools for affiliate commission payouts",
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (defaults to CONFIG_FILE or config/config.yaml)")
	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the monthly affiliate payout once",
		Long: `Pays last month's pending affiliate commissions through Stripe Connect.
Without --force the job only runs on the configured payout day.
Re-running is safe: transfers are idempotent per referrer and month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")
			at, _ := cmd.Flags().GetString("at")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			zl, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = zl.Sync() }()

			ctx := cmd.Context()
			container, err := app.Build(ctx, cfg, zl)
			if err != nil {
				return err
			}
			defer container.Close(context.Background())

			now, err := resolveRunTime(at, cfg.App.Timezone, time.Now)
			if err != nil {
				return err
			}
			return runPayout(ctx, container.Payouts, now, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("force", false, "Run even if today is not the payout day")
	cmd.Flags().String("at", "", "Pretend the run happens on this date (YYYY-MM-DD, business timezone)")

	return cmd
}

// resolveRunTime returns noon of the --at date in the business timezone, or
// the current time when no date is given.
func resolveRunTime(at, timezone string, now func() time.Time) (time.Time, error) {
	if at == "" {
		return now(), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("timezone %q: %w", timezone, err)
	}
	day, err := time.ParseInLocation(atLayout, at, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be YYYY-MM-DD: %w", err)
	}
	return day.Add(12 * time.Hour), nil
}

func runPayout(ctx context.Context, payouts usecase.IAffiliatePayoutUseCase, now time.Time, force bool, out io.Writer) error {
	report, err := payouts.Run(ctx, now, force)
	if err != nil {
		return fmt.Errorf("payout run failed: %w", err)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d referrer payout(s) failed", len(report.Failures))
	}
	return nil
}
