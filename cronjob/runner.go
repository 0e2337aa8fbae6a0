package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner schedules session jobs. Every job runs with the process context,
// never overlaps with itself, and a panic in one job is logged instead of
// taking the process down.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cronLog := cron.VerbosePrintfLogger(zap.NewStdLog(logger.Named("cron")))
	return &Runner{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLog)),
		),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers job under name. The name only shows up in logs.
func (r *Runner) Add(name, spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		r.run(name, job)
	})
}

func (r *Runner) run(name string, job func(context.Context)) {
	if r.baseCtx.Err() != nil {
		return
	}
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("cron job panicked", zap.String("job", name), zap.Any("panic", rec))
			return
		}
		r.logger.Debug("cron job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	}()
	job(r.baseCtx)
}

func (r *Runner) Entries() int {
	return len(r.cron.Entries())
}

func (r *Runner) Start() {
	r.logger.Info("cron started", zap.Int("jobs", r.Entries()))
	r.cron.Start()
}

func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("cron stopped")
}
