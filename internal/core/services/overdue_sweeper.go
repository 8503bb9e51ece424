package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/clock"
	"github.com/robfig/cron/v3"
)

// OverdueSweeper runs SweepOverdue on a cron schedule.
type OverdueSweeper struct {
	cron     *cron.Cron
	invoices portssvc.InvoiceLifecycleSvc
	clock    clock.Clock
	logger   *slog.Logger
}

// NewOverdueSweeper validates schedule (standard five-field cron or a descriptor such
// as "@daily") and registers the sweep. Call Start to begin running it.
func NewOverdueSweeper(invoices portssvc.InvoiceLifecycleSvc, schedule string, clk clock.Clock, logger *slog.Logger) (*OverdueSweeper, error) {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	s := &OverdueSweeper{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		invoices: invoices,
		clock:    clk,
		logger:   logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid overdue sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *OverdueSweeper) Start() {
	s.cron.Start()
	s.logger.Info("Overdue sweeper started", slog.Int("entries", len(s.cron.Entries())))
}

// Stop halts the scheduler and returns a context that is done once a running sweep finishes.
func (s *OverdueSweeper) Stop() context.Context {
	return s.cron.Stop()
}

func (s *OverdueSweeper) run() {
	ctx := middleware.WithLogger(context.Background(), s.logger.With(slog.String("job", "overdue_sweep")))
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
	}
}

// RunOnce sweeps immediately using the sweeper's clock.
func (s *OverdueSweeper) RunOnce(ctx context.Context) (int, error) {
	changed, err := s.invoices.SweepOverdue(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	return len(changed), nil
}
