package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openboard/issue-service/internal/domain"
)

func TestUserSummaryScopesToActor(t *testing.T) {
	tickets := newFakeTicketRepo()
	tickets.byStatus = map[domain.TicketStatus]int64{
		domain.TicketStatusOpen:   3,
		domain.TicketStatusClosed: 1,
	}
	svc := NewStatsService(tickets, nil, time.Minute, zap.NewNop())

	actor := regularUser()
	counts, err := svc.UserSummary(context.Background(), actor)
	if err != nil {
		t.Fatalf("UserSummary() error = %v", err)
	}
	if counts.Open != 3 || counts.InProgress != 0 || counts.Closed != 1 {
		t.Errorf("counts = %+v", counts)
	}
	if tickets.lastCountOwner == nil || *tickets.lastCountOwner != actor.ID {
		t.Errorf("count owner = %v, want actor scope", tickets.lastCountOwner)
	}
}

func TestAdminOverviewAggregates(t *testing.T) {
	tickets := newFakeTicketRepo()
	tickets.byStatus = map[domain.TicketStatus]int64{
		domain.TicketStatusOpen:       5,
		domain.TicketStatusInProgress: 2,
		domain.TicketStatusClosed:     4,
	}
	tickets.byCategory = map[domain.Category]int64{
		domain.CategoryBackend: 7,
		domain.CategoryUIUX:    4,
	}
	svc := NewStatsService(tickets, nil, time.Minute, zap.NewNop())

	overview, err := svc.AdminOverview(context.Background())
	if err != nil {
		t.Fatalf("AdminOverview() error = %v", err)
	}
	if overview.Total != 11 {
		t.Errorf("total = %d, want 11", overview.Total)
	}
	if overview.Open != 5 || overview.InProgress != 2 || overview.Closed != 4 {
		t.Errorf("overview = %+v", overview)
	}
	if overview.ByCategory[domain.CategoryBackend] != 7 {
		t.Errorf("by_category = %v", overview.ByCategory)
	}
	if tickets.lastCountOwner != nil {
		t.Errorf("count owner = %v, want board-wide nil scope", tickets.lastCountOwner)
	}
}

func TestAdminOverviewWithoutCacheHitsRepositoryEachTime(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := NewStatsService(tickets, nil, time.Minute, zap.NewNop())

	svc.AdminOverview(context.Background())
	svc.AdminOverview(context.Background())
	if tickets.statusQueries != 2 {
		t.Errorf("status queries = %d, want 2 when no cache is configured", tickets.statusQueries)
	}
}
