package contract

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// maxProbeRedirects bounds redirect following during a probe.
const maxProbeRedirects = 10

// HTTPProber implements the Prober interface with HEAD requests. A probe is
// a single attempt with a bounded timeout and no body transfer; the tool is
// a point-in-time auditor, so there are no retries and no backoff.
type HTTPProber struct {
	client *http.Client
}

var _ Prober = &HTTPProber{} // Compile-time check

// NewHTTPProber creates a prober with the given per-request timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxProbeRedirects {
					return fmt.Errorf("stopped after %d redirects", maxProbeRedirects)
				}
				return nil
			},
		},
	}
}

// Probe implements the Prober interface. Status codes below 400 classify as
// reachable; a status of 400 or higher, or any transport failure (DNS,
// connection refused, timeout, TLS), classifies as unreachable with the
// cause in Detail.
func (p *HTTPProber) Probe(ctx context.Context, url string) schema.ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return schema.ProbeResult{Detail: err.Error()}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return schema.ProbeResult{Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return schema.ProbeResult{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}
	return schema.ProbeResult{Reachable: true, StatusCode: resp.StatusCode}
}
