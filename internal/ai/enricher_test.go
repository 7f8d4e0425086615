package ai

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/config"
	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/observability"
)

type slowClassifier struct {
	delay    time.Duration
	severity domain.Severity
}

func (s slowClassifier) Classify(ctx context.Context, title, description string) (domain.Severity, Outcome) {
	time.Sleep(s.delay)
	return s.severity, OutcomeOK
}

type slowSummarizer struct {
	delay   time.Duration
	summary string
}

func (s slowSummarizer) Summarize(ctx context.Context, title, description string) (string, Outcome) {
	time.Sleep(s.delay)
	return s.summary, OutcomeOK
}

func TestEnrichRunsClientsConcurrently(t *testing.T) {
	enricher := NewEnricherWithClients(
		slowClassifier{delay: 100 * time.Millisecond, severity: domain.SeverityHigh},
		slowSummarizer{delay: 100 * time.Millisecond, summary: "short version"},
		zap.NewNop(),
	)

	start := time.Now()
	result := enricher.Enrich(context.Background(), "title", "description")
	elapsed := time.Since(start)

	if result.Severity != domain.SeverityHigh {
		t.Errorf("severity = %q, want %q", result.Severity, domain.SeverityHigh)
	}
	if result.Summary != "short version" {
		t.Errorf("summary = %q", result.Summary)
	}
	// Sequential execution would take at least 200ms.
	if elapsed >= 180*time.Millisecond {
		t.Errorf("Enrich took %v, calls did not overlap", elapsed)
	}
}

func TestEnrichBothBackendsDown(t *testing.T) {
	cfg := config.AIConfig{BaseURL: "http://127.0.0.1:1", Mode: config.AIModeLive}
	enricher := NewEnricher(cfg, zap.NewNop(), observability.NewMetrics())

	result := enricher.Enrich(context.Background(), "title", "a broken deploy took the site down")

	if result.Severity != FallbackSeverity {
		t.Errorf("severity = %q, want fallback %q", result.Severity, FallbackSeverity)
	}
	if result.SeverityOutcome != OutcomeUnreachable {
		t.Errorf("severity outcome = %q, want %q", result.SeverityOutcome, OutcomeUnreachable)
	}
	if result.Summary != "a broken deploy took the site down..." {
		t.Errorf("summary = %q, want truncation fallback", result.Summary)
	}
	if result.SummaryOutcome != OutcomeUnreachable {
		t.Errorf("summary outcome = %q, want %q", result.SummaryOutcome, OutcomeUnreachable)
	}
}

func TestEnrichOfflineMode(t *testing.T) {
	cfg := config.AIConfig{Mode: config.AIModeOffline}
	enricher := NewEnricher(cfg, zap.NewNop(), observability.NewMetrics())

	result := enricher.Enrich(context.Background(), "title", "offline description")

	if result.Severity != FallbackSeverity {
		t.Errorf("severity = %q, want %q", result.Severity, FallbackSeverity)
	}
	if result.Summary != "offline description..." {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.SeverityOutcome != OutcomeOK || result.SummaryOutcome != OutcomeOK {
		t.Errorf("offline outcomes = %q/%q, want ok/ok", result.SeverityOutcome, result.SummaryOutcome)
	}
}
