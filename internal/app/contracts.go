package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"go-hrms/internal/contract"
	"go-hrms/internal/shared/config"

	"go.uber.org/zap"
)

type ContractCheckOptions struct {
	Days      int
	AutoRenew bool
}

type ContractCheckSummary struct {
	Evaluation contract.EvaluationReport
	Expiring   []contract.ContractResponse
	Renewal    *contract.SweepReport
}

// RunContractCheck performs a single evaluation pass outside the worker,
// intended for cron or manual use, and prints a summary to out.
func RunContractCheck(cfg *config.Config, opts ContractCheckOptions, out io.Writer) error {
	logger := zap.L().Named("app.contracts")

	infra, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := buildServices(cfg, infra.sqlDB, infra.gormDB, infra.redis, zap.L())
	summary, err := checkContracts(ctx, svc.contract, opts)
	if err != nil {
		return err
	}

	return printContractSummary(out, summary)
}

func checkContracts(ctx context.Context, svc contract.Service, opts ContractCheckOptions) (ContractCheckSummary, error) {
	var summary ContractCheckSummary

	evaluation, err := svc.EvaluateAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("evaluate contracts: %w", err)
	}
	summary.Evaluation = evaluation

	days := opts.Days
	if days <= 0 {
		days = contract.DefaultExpiringSoonDays
	}
	expiring, err := svc.ExpiringSoon(ctx, days)
	if err != nil {
		return summary, fmt.Errorf("list expiring contracts: %w", err)
	}
	summary.Expiring = expiring

	if opts.AutoRenew {
		report, err := svc.AutoRenew(ctx)
		if err != nil {
			return summary, fmt.Errorf("auto-renew contracts: %w", err)
		}
		summary.Renewal = &report
	}

	return summary, nil
}

func printContractSummary(out io.Writer, summary ContractCheckSummary) error {
	ev := summary.Evaluation
	fmt.Fprintf(out, "evaluated: %d  expired: %d  flagged: %d  failed: %d\n",
		ev.Evaluated, ev.Expired, ev.Flagged, ev.Failed)

	if len(summary.Expiring) == 0 {
		fmt.Fprintln(out, "no contracts expiring soon")
	} else {
		fmt.Fprintf(out, "%d contract(s) expiring soon:\n", len(summary.Expiring))
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEMPLOYEE\tTYPE\tEND DATE\tDAYS LEFT")
		for _, c := range summary.Expiring {
			endDate, daysLeft := "-", "-"
			if c.EndDate != nil {
				endDate = *c.EndDate
			}
			if c.DaysUntilExpiry != nil {
				daysLeft = fmt.Sprint(*c.DaysUntilExpiry)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.EmployeeID, c.ContractType, endDate, daysLeft)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if r := summary.Renewal; r != nil {
		fmt.Fprintf(out, "renewed: %d  skipped: %d  failed: %d\n", r.Renewed, r.Skipped, r.Failed)
		for _, f := range r.Failures {
			fmt.Fprintf(out, "  %s: %s\n", f.ContractID, f.Error)
		}
	}

	return nil
}
