package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/persistence"
	"github.com/openboard/issue-service/internal/repository"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

const statsCacheKey = "stats:tickets:overview"

// StatusCounts summarizes tickets by lifecycle state.
type StatusCounts struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Closed     int64 `json:"closed"`
}

// Overview is the admin analytics payload.
type Overview struct {
	Total      int64                     `json:"total"`
	Open       int64                     `json:"open"`
	InProgress int64                     `json:"in_progress"`
	Closed     int64                     `json:"closed"`
	ByCategory map[domain.Category]int64 `json:"by_category"`
}

// StatsService computes dashboard counts. Admin analytics are cached in
// Redis with a short TTL; cache unavailability degrades to a direct query.
type StatsService struct {
	tickets repository.TicketRepository
	cache   *persistence.Redis
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStatsService constructs the service.
func NewStatsService(tickets repository.TicketRepository, cache *persistence.Redis, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{tickets: tickets, cache: cache, ttl: ttl, logger: logger}
}

// UserSummary returns the actor's own tickets broken down by status.
func (s *StatsService) UserSummary(ctx context.Context, actor *domain.User) (StatusCounts, error) {
	ownerID := actor.ID
	counts, err := s.tickets.CountByStatus(ctx, &ownerID)
	if err != nil {
		return StatusCounts{}, apperrors.MapError(err)
	}
	return statusCounts(counts), nil
}

// AdminOverview returns board-wide totals by status and category.
func (s *StatsService) AdminOverview(ctx context.Context) (Overview, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	byStatus, err := s.tickets.CountByStatus(ctx, nil)
	if err != nil {
		return Overview{}, apperrors.MapError(err)
	}
	byCategory, err := s.tickets.CountByCategory(ctx)
	if err != nil {
		return Overview{}, apperrors.MapError(err)
	}

	counts := statusCounts(byStatus)
	overview := Overview{
		Total:      counts.Open + counts.InProgress + counts.Closed,
		Open:       counts.Open,
		InProgress: counts.InProgress,
		Closed:     counts.Closed,
		ByCategory: byCategory,
	}
	s.toCache(ctx, overview)
	return overview, nil
}

func (s *StatsService) fromCache(ctx context.Context) (Overview, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return Overview{}, false
	}
	raw, err := s.cache.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return Overview{}, false
	}
	var overview Overview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return Overview{}, false
	}
	return overview, true
}

func (s *StatsService) toCache(ctx context.Context, overview Overview) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, statsCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Debug("stats cache write failed", zap.Error(err))
	}
}

func statusCounts(counts map[domain.TicketStatus]int64) StatusCounts {
	return StatusCounts{
		Open:       counts[domain.TicketStatusOpen],
		InProgress: counts[domain.TicketStatusInProgress],
		Closed:     counts[domain.TicketStatusClosed],
	}
}
