package jobs

import (
	"context"
	"log/slog"
	"time"

	"support/internal/core/domain/model/conversation"
	"support/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// defaultMaxIdle is how long a session may sit without a turn before the
// prune job drops it.
const defaultMaxIdle = 30 * time.Minute

// SessionPruneJob manages the scheduled eviction of idle conversation
// sessions. Runs every minute so abandoned conversations do not accumulate
// in memory.
type SessionPruneJob struct {
	sessions *conversation.Registry
	maxIdle  time.Duration
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionPruneJob creates a new job for pruning idle sessions.
// maxIdle bounds session inactivity; zero selects the default.
func NewSessionPruneJob(
	sessions *conversation.Registry,
	maxIdle time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *SessionPruneJob {
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	return &SessionPruneJob{
		sessions: sessions,
		maxIdle:  maxIdle,
		metrics:  m,
		cron:     cron.New(),
		logger:   logger.With("component", "session_prune_job"),
	}
}

// Start begins the prune job to run every minute.
func (j *SessionPruneJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session prune job started (running every minute)",
		"max_idle", j.maxIdle.String())
	return nil
}

// Stop stops the prune job.
func (j *SessionPruneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session prune job stopped")
}

func (j *SessionPruneJob) runOnce() {
	ctx := context.Background()

	pruned := j.sessions.PruneIdle(time.Now(), j.maxIdle)
	if pruned == 0 {
		return
	}

	if j.metrics != nil {
		j.metrics.SessionsPrunedTotal.Add(float64(pruned))
		j.metrics.ActiveSessions.Set(float64(j.sessions.Len()))
	}
	j.logger.InfoContext(ctx, "Idle sessions pruned",
		"pruned", pruned,
		"remaining", j.sessions.Len(),
	)
}
