package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	aiOutcomes   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		aiOutcomes:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordEnrichment counts one enrichment call outcome per endpoint.
func (m *Metrics) RecordEnrichment(endpoint, outcome string) {
	if m == nil {
		return
	}
	key := endpoint + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aiOutcomes[key]++
}

// EnrichmentCount returns the recorded count for an endpoint/outcome pair.
func (m *Metrics) EnrichmentCount(endpoint, outcome string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aiOutcomes[endpoint+"|"+outcome]
}
