// Package scheduler runs the periodic contract sweep: expiry evaluation
// followed by auto-renewal.
package scheduler

import (
	"context"
	"time"

	"go-hrms/internal/contract"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	ContractSweepLockKey = "locks:contract-sweep"
	ContractSweepLockTTL = 10 * time.Minute
)

type ContractSweeper interface {
	EvaluateAll(ctx context.Context) (contract.EvaluationReport, error)
	AutoRenew(ctx context.Context) (contract.SweepReport, error)
}

type SweepResult struct {
	Skipped    bool
	Evaluation contract.EvaluationReport
	Renewal    *contract.SweepReport
}

type ContractSweepScheduler struct {
	sweeper   ContractSweeper
	rdb       *redis.Client
	interval  time.Duration
	autoRenew bool
	logger    *zap.Logger
}

func NewContractSweepScheduler(
	sweeper ContractSweeper,
	rdb *redis.Client,
	interval time.Duration,
	autoRenew bool,
	logger ...*zap.Logger,
) *ContractSweepScheduler {
	l := zap.L().Named("scheduler.contract_sweep")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("scheduler.contract_sweep")
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ContractSweepScheduler{
		sweeper:   sweeper,
		rdb:       rdb,
		interval:  interval,
		autoRenew: autoRenew,
		logger:    l,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *ContractSweepScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("contract sweep scheduler started",
		zap.Duration("interval", s.interval),
		zap.Bool("auto_renew", s.autoRenew),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("contract sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *ContractSweepScheduler) tick(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("contract sweep failed", zap.Error(err))
	}
}

// RunOnce performs a single sweep. When another worker holds the lock the
// sweep is skipped and Skipped is set.
func (s *ContractSweepScheduler) RunOnce(ctx context.Context) (SweepResult, error) {
	if s.rdb != nil {
		acquired, err := s.rdb.SetNX(ctx, ContractSweepLockKey, "locked", ContractSweepLockTTL).Result()
		if err != nil {
			return SweepResult{}, err
		}
		if !acquired {
			s.logger.Info("contract sweep already running elsewhere")
			return SweepResult{Skipped: true}, nil
		}
		defer s.release(ctx)
	}

	var res SweepResult
	eval, err := s.sweeper.EvaluateAll(ctx)
	if err != nil {
		return res, err
	}
	res.Evaluation = eval

	if s.autoRenew {
		renewal, err := s.sweeper.AutoRenew(ctx)
		if err != nil {
			return res, err
		}
		res.Renewal = &renewal
	}

	s.logger.Info("contract sweep done",
		zap.Int("evaluated", eval.Evaluated),
		zap.Int("expired", eval.Expired),
		zap.Int("flagged", eval.Flagged),
		zap.Bool("auto_renew", s.autoRenew),
	)
	return res, nil
}

func (s *ContractSweepScheduler) release(ctx context.Context) {
	if err := s.rdb.Del(context.WithoutCancel(ctx), ContractSweepLockKey).Err(); err != nil {
		s.logger.Warn("release contract sweep lock failed", zap.Error(err))
	}
}
