package dto

const (
	healthOK       = "ok"
	healthReady    = "ready"
	healthNotReady = "not_ready"
)

// HealthResponse is the body of the probe endpoints. Checks is omitted for
// liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LiveResponse reports a process that is able to serve.
func LiveResponse() HealthResponse {
	return HealthResponse{Status: healthOK}
}

// ToReadinessResponse folds per-checker results into a probe body. The
// second result is false when any checker failed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: healthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = healthOK
	}
	if !healthy {
		resp.Status = healthNotReady
	}
	return resp, healthy
}
