package health

import (
	"context"
	"time"

	"ledger-backend/internal/cache"
)

// UpstreamPinger is satisfied by the ERP client.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	upstream UpstreamPinger
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Upstream UpstreamHealth `json:"upstream"`
	Cache    CacheHealth    `json:"cache"`
}

type UpstreamHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type CacheHealth struct {
	Status string `json:"status"`
}

func NewHealthChecker(upstream UpstreamPinger) *HealthChecker {
	return &HealthChecker{upstream: upstream}
}

// CheckBasic reports upstream reachability and cache state. The cache is
// optional infrastructure, so a disabled cache never makes the service
// unhealthy.
func (h *HealthChecker) CheckBasic() HealthStatus {
	upstreamHealth := h.checkUpstream()

	status := "healthy"
	if upstreamHealth.Status != "healthy" {
		status = "unhealthy"
	}

	cacheStatus := "disabled"
	if cache.Enabled() {
		cacheStatus = "connected"
	}

	return HealthStatus{
		Status:   status,
		Upstream: upstreamHealth,
		Cache:    CacheHealth{Status: cacheStatus},
	}
}

func (h *HealthChecker) checkUpstream() UpstreamHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.upstream.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return UpstreamHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return UpstreamHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
