package scheduler

import (
	"context"
	"log/slog"
	"time"

	"amenity-booking/internal/pkg/config"
	pkgtenant "amenity-booking/internal/pkg/tenant"
	"amenity-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

type TenantLister interface {
	Tenants() []string
}

// Scheduler runs the background booking jobs for every configured tenant.
type Scheduler struct {
	cron     *cron.Cron
	cfg      config.SchedulerConfig
	tenants  TenantLister
	bookings commands.BookingCommands
	logger   *slog.Logger
}

func NewScheduler(cfg config.SchedulerConfig, tenants TenantLister, bookings commands.BookingCommands, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:     c,
		cfg:      cfg,
		tenants:  tenants,
		bookings: bookings,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(cfg.FinalizeSpec, s.FinalizeElapsed); err != nil {
		return nil, err
	}
	if cfg.PurgeSpec != "" {
		if _, err := s.cron.AddFunc(cfg.PurgeSpec, s.PurgeIdempotencyKeys); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FinalizeElapsed completes elapsed confirmed bookings tenant by tenant.
// A failing tenant is logged and does not stop the others.
func (s *Scheduler) FinalizeElapsed() {
	s.forEachTenant("booking finalizer", "Completed elapsed bookings", s.bookings.FinalizeElapsed)
}

// PurgeIdempotencyKeys drops expired idempotency keys tenant by tenant.
func (s *Scheduler) PurgeIdempotencyKeys() {
	s.forEachTenant("idempotency purge", "Purged expired idempotency keys", s.bookings.PurgeIdempotencyKeys)
}

func (s *Scheduler) forEachTenant(job, doneMsg string, fn func(ctx context.Context) (int64, error)) {
	for _, tenantID := range s.tenants.Tenants() {
		s.runTenant(tenantID, job, doneMsg, fn)
	}
}

func (s *Scheduler) runTenant(tenantID, job, doneMsg string, fn func(ctx context.Context) (int64, error)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Scheduled job panicked", "job", job, "tenant_id", tenantID, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	ctx = pkgtenant.WithTenant(ctx, tenantID)

	n, err := fn(ctx)
	if err != nil {
		s.logger.Error("Scheduled job failed", "job", job, "tenant_id", tenantID, "error", err)
		return
	}
	if n > 0 {
		s.logger.Info(doneMsg, "tenant_id", tenantID, "count", n)
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler", "finalize_spec", s.cfg.FinalizeSpec, "purge_spec", s.cfg.PurgeSpec)
	s.cron.Start()
}

func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Cron scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Cron scheduler stop timed out", "error", ctx.Err())
	}
}
