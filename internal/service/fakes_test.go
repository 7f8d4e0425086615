package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/openboard/issue-service/internal/ai"
	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/events"
	"github.com/openboard/issue-service/internal/repository"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

type fakeTicketRepo struct {
	tickets    map[string]*domain.Ticket
	nextID     int
	createErr  error
	updated    *domain.Ticket
	deletedID  string
	lastFilter repository.TicketFilter
	listResult []domain.Ticket

	byStatus       map[domain.TicketStatus]int64
	byCategory     map[domain.Category]int64
	lastCountOwner *string
	statusQueries  int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	ticket.ID = fmt.Sprintf("ticket-%d", f.nextID)
	stored := *ticket
	f.tickets[ticket.ID] = &stored
	return nil
}

func (f *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if _, ok := f.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *ticket
	f.tickets[ticket.ID] = &stored
	f.updated = &stored
	return nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (f *fakeTicketRepo) DeleteCascade(ctx context.Context, id string) error {
	if _, ok := f.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.tickets, id)
	f.deletedID = id
	return nil
}

func (f *fakeTicketRepo) ListWithFilter(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeTicketRepo) CountByStatus(ctx context.Context, ownerID *string) (map[domain.TicketStatus]int64, error) {
	f.lastCountOwner = ownerID
	f.statusQueries++
	if f.byStatus == nil {
		return map[domain.TicketStatus]int64{}, nil
	}
	return f.byStatus, nil
}

func (f *fakeTicketRepo) CountByCategory(ctx context.Context) (map[domain.Category]int64, error) {
	if f.byCategory == nil {
		return map[domain.Category]int64{}, nil
	}
	return f.byCategory, nil
}

type fakeUserRepo struct {
	users     map[string]*domain.User
	adminsErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var all []domain.User
	for _, u := range f.users {
		all = append(all, *u)
	}
	return all, nil
}

func (f *fakeUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	if f.adminsErr != nil {
		return nil, f.adminsErr
	}
	var admins []domain.User
	for _, u := range f.users {
		if u.Role == domain.RoleAdmin && u.Active {
			admins = append(admins, *u)
		}
	}
	return admins, nil
}

type fakeCommentRepo struct {
	comments  []domain.Comment
	createErr error
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	comment.ID = fmt.Sprintf("comment-%d", len(f.comments)+1)
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListByTicket(ctx context.Context, ticketID string) ([]domain.CommentWithAuthor, error) {
	var out []domain.CommentWithAuthor
	for _, c := range f.comments {
		if c.TicketID == ticketID {
			out = append(out, domain.CommentWithAuthor{Comment: c, AuthorUsername: "someone"})
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByTicket(ctx context.Context, ticketID string) (int64, error) {
	var n int64
	for _, c := range f.comments {
		if c.TicketID == ticketID {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	created   []domain.Notification
	createErr error
	marked    []string
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	notification.ID = fmt.Sprintf("notif-%d", len(f.created)+1)
	f.created = append(f.created, *notification)
	return nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	for _, n := range f.created {
		if n.ID == id {
			copied := n
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	for i, n := range f.created {
		if n.ID == id {
			f.created[i].Read = true
			f.marked = append(f.marked, id)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type stubEnricher struct {
	result ai.Enrichment
	calls  int
}

func (s *stubEnricher) Enrich(ctx context.Context, title, description string) ai.Enrichment {
	s.calls++
	return s.result
}

type captureDispatcher struct {
	published []events.Event
}

func (c *captureDispatcher) Publish(ctx context.Context, event events.Event) error {
	c.published = append(c.published, event)
	return nil
}

func (c *captureDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func adminUser() *domain.User {
	return &domain.User{ID: "admin-1", Username: "root", Role: domain.RoleAdmin, Active: true}
}

func regularUser() *domain.User {
	return &domain.User{ID: "user-1", Username: "casey", Role: domain.RoleUser, Active: true}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	return domainErr.Code
}
