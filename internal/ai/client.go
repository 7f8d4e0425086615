// Package ai talks to the external enrichment microservice. Both clients
// degrade to documented fallbacks on any failure: a slow or broken AI
// service must never surface as a ticket-creation error.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openboard/issue-service/internal/domain"
)

// Outcome classifies the result of one enrichment call.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeUnreachable Outcome = "unreachable"
	OutcomeTimeout     Outcome = "timeout"
)

// FallbackSeverity is substituted when the classifier cannot produce a valid
// label. Mid-range on purpose: "critical" would cause false urgency and
// "low" would under-prioritize real incidents.
const FallbackSeverity = domain.SeverityMedium

// fallbackSummaryLimit bounds the description excerpt used when the
// summarizer is unavailable.
const fallbackSummaryLimit = 100

// FallbackSummary returns a deterministic excerpt of the description with an
// ellipsis marker appended.
func FallbackSummary(description string) string {
	runes := []rune(description)
	if len(runes) > fallbackSummaryLimit {
		runes = runes[:fallbackSummaryLimit]
	}
	return string(runes) + "..."
}

// enrichRequest is the wire payload both endpoints accept.
type enrichRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

// postJSON issues a single request (no retries) and decodes the response
// into out. The returned Outcome is OutcomeOK only on a decoded 2xx reply.
func postJSON(ctx context.Context, client *http.Client, endpoint string, payload enrichRequest, out any) (Outcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutcomeInvalid, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return OutcomeUnreachable, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return OutcomeTimeout, err
		}
		return OutcomeUnreachable, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return OutcomeUnreachable, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return OutcomeInvalid, err
	}
	return OutcomeOK, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
