package remotedb

import (
	"context"
	"net/http"
	"time"

	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
)

// Probe decides which backend is authoritative for the session: one GET
// against the API root, bounded by timeout. A 2xx within the timeout
// selects remote mode; anything else (network error, timeout, non-2xx)
// selects local mode. Probe failures are never surfaced as errors, and
// the decision is made exactly once per session.
func Probe(ctx context.Context, baseURL string, timeout time.Duration, log core.Logger) collab.Mode {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/", nil)
	if err != nil {
		log.Warn("remote API probe failed; falling back to local store", err)
		return collab.ModeLocal
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Warn("remote API unreachable; falling back to local store", err)
		return collab.ModeLocal
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn("remote API unhealthy; falling back to local store", map[string]interface{}{"status": res.StatusCode})
		return collab.ModeLocal
	}
	return collab.ModeRemote
}
