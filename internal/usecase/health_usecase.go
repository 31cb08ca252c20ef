package usecase

import "context"

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status          string `json:"status"`
	AIEnabled       bool   `json:"ai_enabled"`
	DatabaseEnabled bool   `json:"database_enabled"`
	RedisAvailable  bool   `json:"redis_available"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	aiEnabled       bool
	databaseEnabled bool
	redisAvailable  func() bool
}

// NewHealthUsecase reports static feature flags plus a live Redis probe.
func NewHealthUsecase(aiEnabled, databaseEnabled bool, redisAvailable func() bool) HealthUsecase {
	return &healthUsecase{
		aiEnabled:       aiEnabled,
		databaseEnabled: databaseEnabled,
		redisAvailable:  redisAvailable,
	}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:          "healthy",
		AIEnabled:       u.aiEnabled,
		DatabaseEnabled: u.databaseEnabled,
	}
	if u.redisAvailable != nil {
		status.RedisAvailable = u.redisAvailable()
	}
	return status
}
