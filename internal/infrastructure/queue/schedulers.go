package queue

import (
	"time"

	"lumina-storefront/internal/config"
	"lumina-storefront/internal/shared"
	"lumina-storefront/pkg/logger"

	"github.com/hibiken/asynq"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.WorkerConfig
}

func NewScheduler(redis config.RedisConfig, cfg config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redis.Host, Password: redis.Password, DB: redis.DB},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		cfg:       cfg,
	}
}

// RegisterJobs registers every periodic task
func (s *Scheduler) RegisterJobs() error {
	return s.registerPendingDigestJob()
}

// ================================================
// Pending orders digest (PENDING_DIGEST_CRON, default daily 08:00 UTC)
// ================================================
func (s *Scheduler) registerPendingDigestJob() error {
	if s.cfg.DigestCron == "" || s.cfg.DigestCron == "off" {
		logger.Info("Pending orders digest disabled", nil)
		return nil
	}

	task := asynq.NewTask(shared.TypeOrdersDigest, nil)

	_, err := s.scheduler.Register(
		s.cfg.DigestCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register pending orders digest", err)
		return err
	}

	logger.Info("Registered pending orders digest", map[string]interface{}{"cron": s.cfg.DigestCron})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
