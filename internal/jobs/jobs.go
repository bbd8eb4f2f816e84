package jobs

//go:generate go run go.uber.org/mock/mockgen -source=./jobs.go -destination=./mocks/jobs_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Expirer cancels records still awaiting payment that were created at or before the cutoff.
type Expirer interface {
	ExpirePending(ctx context.Context, before time.Time) error
}

type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.Config
	otel     otel.Otel
	expirers map[string]Expirer
}

func New(cfg *config.Config, otel otel.Otel, expirers map[string]Expirer) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		cfg:      cfg,
		otel:     otel,
		expirers: expirers,
	}
}

func (s *Scheduler) Start() error {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled")

		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Scheduler.PendingExpirySpec, func() {
		s.ExpirePending(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pending expiry job: %w", err)
	}

	s.cron.Start()
	log.Info().Str("spec", s.cfg.Scheduler.PendingExpirySpec).Msg("Scheduler started")

	return nil
}

// Stop waits for running jobs to finish or for ctx to expire, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		log.Info().Msg("Scheduler stopped")
	case <-ctx.Done():
		log.Warn().Msg("Scheduler stop timed out")
	}
}

// ExpirePending releases slots held by bookings whose payment never arrived.
func (s *Scheduler) ExpirePending(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ExpirePending")
	defer scope.End()

	cutoff := timezone.Now().Add(-time.Duration(s.cfg.Scheduler.PendingTTLMinutes) * time.Minute)
	scope.SetAttribute("job.cutoff", cutoff.Format(constant.DateFormat))

	for name, expirer := range s.expirers {
		if err := expirer.ExpirePending(ctx, cutoff); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("job", name).Msg("failed to expire pending records")

			continue
		}

		log.Debug().Str("job", name).Time("cutoff", cutoff).Msg("expired pending records")
	}
}
