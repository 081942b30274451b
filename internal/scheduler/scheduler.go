// Package scheduler manages the periodic refresh of live team payloads.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/datasource"
	"github.com/Ajinkyaa2004/Copascore/internal/liveform"
	"github.com/Ajinkyaa2004/Copascore/internal/metrics"
)

// Scheduler runs cron jobs that fetch fresh team payloads from the provider
// and swap them into the live form engine
type Scheduler struct {
	cron      *cron.Cron
	client    *datasource.ProviderClient
	engine    *liveform.Engine
	logger    *logrus.Logger
	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a scheduler over a provider client and target engine
func NewScheduler(client *datasource.ProviderClient, engine *liveform.Engine, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		client: client,
		engine: engine,
		logger: logger,
	}
}

// ScheduleTeamRefresh registers a refresh job for the given provider team ids
func (s *Scheduler) ScheduleTeamRefresh(cronExpression string, teamIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.cron.AddFunc(cronExpression, func() {
		s.refreshTeams(teamIDs)
	})
	return err
}

func (s *Scheduler) refreshTeams(teamIDs []int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, id := range teamIDs {
		data, err := s.client.FetchTeam(ctx, id)
		if err != nil {
			metrics.ProviderRefreshTotal.WithLabelValues("error").Inc()
			s.logger.WithError(err).WithField("team_id", id).Error("Failed to refresh team payload")
			continue
		}
		s.engine.AddTeam(data)
		metrics.ProviderRefreshTotal.WithLabelValues("success").Inc()
	}
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.Info("Live data refresh scheduler started")
}

// Stop halts job scheduling and waits for a running job to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("Live data refresh scheduler stopped")
}
