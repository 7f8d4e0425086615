package ai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/observability"
)

// SeverityClient asks the AI service for a severity label.
type SeverityClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewSeverityClient builds a classifier client with its own timeout.
func NewSeverityClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *SeverityClient {
	return &SeverityClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/severity",
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		metrics:  metrics,
	}
}

// Classify returns a severity for the candidate ticket. The label is always
// a valid enum member: on any failure the fixed fallback is returned along
// with the outcome describing what went wrong.
func (c *SeverityClient) Classify(ctx context.Context, title, description string) (domain.Severity, Outcome) {
	var reply struct {
		Severity string `json:"severity"`
	}
	outcome, err := postJSON(ctx, c.client, c.endpoint, enrichRequest{Title: title, Description: description}, &reply)
	if outcome == OutcomeOK {
		severity := domain.Severity(strings.ToLower(strings.TrimSpace(reply.Severity)))
		if !severity.IsValid() {
			outcome = OutcomeInvalid
			c.diagnose(outcome, nil, reply.Severity)
			return FallbackSeverity, outcome
		}
		c.diagnose(outcome, nil, string(severity))
		return severity, outcome
	}
	c.diagnose(outcome, err, "")
	return FallbackSeverity, outcome
}

func (c *SeverityClient) diagnose(outcome Outcome, err error, label string) {
	c.metrics.RecordEnrichment("severity", string(outcome))
	fields := []zap.Field{zap.String("outcome", string(outcome))}
	if label != "" {
		fields = append(fields, zap.String("label", label))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch outcome {
	case OutcomeOK:
		c.logger.Debug("severity classified", fields...)
	default:
		c.logger.Warn("severity classification degraded", fields...)
	}
}
