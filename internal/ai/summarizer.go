package ai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/observability"
)

// SummaryClient asks the AI service for a short natural-language summary.
type SummaryClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewSummaryClient builds a summarizer client with its own timeout,
// independent of the classifier's.
func NewSummaryClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *SummaryClient {
	return &SummaryClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/summarize",
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		metrics:  metrics,
	}
}

// Summarize returns a summary for the ticket description. The result is
// never empty: on any failure a deterministic truncation of the description
// is returned along with the degraded outcome.
func (c *SummaryClient) Summarize(ctx context.Context, title, description string) (string, Outcome) {
	var reply struct {
		Summary string `json:"summary"`
	}
	outcome, err := postJSON(ctx, c.client, c.endpoint, enrichRequest{Title: title, Description: description}, &reply)
	if outcome == OutcomeOK {
		summary := strings.TrimSpace(reply.Summary)
		if summary == "" {
			outcome = OutcomeInvalid
			c.diagnose(outcome, nil)
			return FallbackSummary(description), outcome
		}
		c.diagnose(outcome, nil)
		return summary, outcome
	}
	c.diagnose(outcome, err)
	return FallbackSummary(description), outcome
}

func (c *SummaryClient) diagnose(outcome Outcome, err error) {
	c.metrics.RecordEnrichment("summarize", string(outcome))
	fields := []zap.Field{zap.String("outcome", string(outcome))}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch outcome {
	case OutcomeOK:
		c.logger.Debug("summary generated", fields...)
	default:
		c.logger.Warn("summary generation degraded", fields...)
	}
}
