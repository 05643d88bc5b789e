package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"support/internal/core/domain/model/conversation"
	"support/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionPruneJob *SessionPruneJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sessions *conversation.Registry,
	sessionMaxIdle time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionPruneJob: NewSessionPruneJob(sessions, sessionMaxIdle, m, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionPruneJob.Start(); err != nil {
		return fmt.Errorf("failed to start session prune job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionPruneJob.Stop()
}
