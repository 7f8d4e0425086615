package ai

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/config"
	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/observability"
)

// SeverityClassifier produces a guaranteed-valid severity for a ticket.
type SeverityClassifier interface {
	Classify(ctx context.Context, title, description string) (domain.Severity, Outcome)
}

// Summarizer produces a guaranteed-non-empty summary for a ticket.
type Summarizer interface {
	Summarize(ctx context.Context, title, description string) (string, Outcome)
}

// Enrichment is the merged result of both AI calls. Severity and Summary are
// always populated regardless of upstream availability.
type Enrichment struct {
	Severity        domain.Severity
	Summary         string
	SeverityOutcome Outcome
	SummaryOutcome  Outcome
}

// Enricher runs the two enrichment calls for one candidate ticket. It never
// returns an error: a failed sub-call degrades quality, not availability.
type Enricher struct {
	severity SeverityClassifier
	summary  Summarizer
	offline  bool
	logger   *zap.Logger
}

// NewEnricher wires the enricher from configuration. In offline mode no
// network clients are constructed at all.
func NewEnricher(cfg config.AIConfig, logger *zap.Logger, metrics *observability.Metrics) *Enricher {
	if cfg.Mode == config.AIModeOffline {
		return &Enricher{offline: true, logger: logger}
	}
	return &Enricher{
		severity: NewSeverityClient(cfg.BaseURL, cfg.SeverityTimeout(), logger, metrics),
		summary:  NewSummaryClient(cfg.BaseURL, cfg.SummaryTimeout(), logger, metrics),
		logger:   logger,
	}
}

// NewEnricherWithClients builds an enricher over explicit clients.
func NewEnricherWithClients(severity SeverityClassifier, summary Summarizer, logger *zap.Logger) *Enricher {
	return &Enricher{severity: severity, summary: summary, logger: logger}
}

// Enrich runs both clients concurrently and merges their outcomes. Total
// latency is bounded by the slower of the two timeouts, not their sum.
func (e *Enricher) Enrich(ctx context.Context, title, description string) Enrichment {
	if e.offline {
		return Enrichment{
			Severity:        FallbackSeverity,
			Summary:         FallbackSummary(description),
			SeverityOutcome: OutcomeOK,
			SummaryOutcome:  OutcomeOK,
		}
	}

	var result Enrichment
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Severity, result.SeverityOutcome = e.severity.Classify(ctx, title, description)
	}()
	go func() {
		defer wg.Done()
		result.Summary, result.SummaryOutcome = e.summary.Summarize(ctx, title, description)
	}()
	wg.Wait()

	e.logger.Info("ticket enriched",
		zap.String("severity", string(result.Severity)),
		zap.String("severity_outcome", string(result.SeverityOutcome)),
		zap.String("summary_outcome", string(result.SummaryOutcome)))
	return result
}
