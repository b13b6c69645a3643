package health

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names reported in Report.Checks.
const (
	ComponentPostgres = "postgres"
	ComponentRedis    = "redis"
	ComponentEvents   = "events"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	postgres Pinger
	redis    Pinger
	events   Pinger
}

// New creates a Service. events can be nil.
func New(postgres, redis, events Pinger) *Service {
	return &Service{postgres: postgres, redis: redis, events: events}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 3)

	check := func(name string, p Pinger) {
		if err := p.Ping(ctx); err != nil {
			logger.FromContext(ctx).Warn("health check failed",
				zap.String("component", name), zap.Error(err))
			checks[name] = CheckError
			return
		}
		checks[name] = CheckOK
	}

	check(ComponentPostgres, s.postgres)
	check(ComponentRedis, s.redis)
	if s.events != nil {
		check(ComponentEvents, s.events)
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
