package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient, EventBus, TemporalClient).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by the health endpoint.
// Optional dependencies report "unreachable" without degrading overall status.
type HealthCheck struct {
	Name     string
	Checker  HealthChecker
	Optional bool
}

type healthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// HealthHandler probes every check concurrently and answers 503 when a
// required dependency fails. Checks with a nil Checker are reported "disabled".
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		type result struct {
			idx int
			err error
		}
		results := make(chan result, len(checks))
		pending := 0
		for i, c := range checks {
			if c.Checker == nil {
				continue
			}
			pending++
			go func() {
				results <- result{idx: i, err: c.Checker.Ping(ctx)}
			}()
		}

		resp := healthResponse{Status: "ok", Dependencies: make(map[string]string, len(checks))}
		for _, c := range checks {
			if c.Checker == nil {
				resp.Dependencies[c.Name] = "disabled"
			}
		}
		for range pending {
			res := <-results
			c := checks[res.idx]
			if res.err == nil {
				resp.Dependencies[c.Name] = "ok"
				continue
			}
			resp.Dependencies[c.Name] = "unreachable"
			if !c.Optional {
				resp.Status = "degraded"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
