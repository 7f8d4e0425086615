package repository

import (
	"strings"
	"testing"

	"github.com/openboard/issue-service/internal/domain"
)

func TestBuildListQueryNoFilters(t *testing.T) {
	query, args := buildListQuery(TicketFilter{})

	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
	if !strings.Contains(query, "WHERE 1=1 ORDER BY") {
		t.Errorf("query = %q, want no filter clauses", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("query = %q, want newest-first default order", query)
	}
	if !strings.HasSuffix(query, "LIMIT 50 OFFSET 0") {
		t.Errorf("query = %q, want default page size 50", query)
	}
}

func TestBuildListQueryAllFilters(t *testing.T) {
	owner := "user-1"
	ttype := domain.TicketTypeBug
	category := domain.CategoryBackend
	severity := domain.SeverityHigh
	status := domain.TicketStatusOpen

	query, args := buildListQuery(TicketFilter{
		OwnerID:  &owner,
		Type:     &ttype,
		Category: &category,
		Severity: &severity,
		Status:   &status,
	})

	wantClauses := []string{
		"created_by=$1",
		"ticket_type=$2",
		"category=$3",
		"severity=$4",
		"status=$5",
	}
	for _, clause := range wantClauses {
		if !strings.Contains(query, clause) {
			t.Errorf("query %q missing clause %q", query, clause)
		}
	}
	if len(args) != 5 {
		t.Fatalf("len(args) = %d, want 5", len(args))
	}
	if args[0] != owner {
		t.Errorf("args[0] = %v, want %q", args[0], owner)
	}
	if args[4] != status {
		t.Errorf("args[4] = %v, want %q", args[4], status)
	}
}

func TestBuildListQuerySortModes(t *testing.T) {
	tests := []struct {
		name string
		sort SortMode
		want string
	}{
		{"newest", SortNewest, "ORDER BY created_at DESC, id DESC"},
		{"oldest", SortOldest, "ORDER BY created_at ASC, id ASC"},
		{"priority", SortPriority, "ORDER BY CASE severity WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, created_at DESC, id DESC"},
		{"unknown falls back to newest", SortMode("bogus"), "ORDER BY created_at DESC, id DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := buildListQuery(TicketFilter{Sort: tt.sort})
			if !strings.Contains(query, tt.want) {
				t.Errorf("query = %q, want order %q", query, tt.want)
			}
		})
	}
}

func TestBuildListQueryPagination(t *testing.T) {
	query, _ := buildListQuery(TicketFilter{Limit: 20, Offset: 40})
	if !strings.HasSuffix(query, "LIMIT 20 OFFSET 40") {
		t.Errorf("query = %q, want LIMIT 20 OFFSET 40", query)
	}

	query, _ = buildListQuery(TicketFilter{Limit: -5, Offset: -3})
	if !strings.HasSuffix(query, "LIMIT 50 OFFSET 0") {
		t.Errorf("query = %q, want sanitized pagination", query)
	}
}
