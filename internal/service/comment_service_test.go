package service

import (
	"context"
	"strings"
	"testing"

	"github.com/openboard/issue-service/internal/events"
)

func newCommentServiceForTest(comments *fakeCommentRepo, tickets *fakeTicketRepo, dispatcher *captureDispatcher) *CommentService {
	return NewCommentService(CommentDependencies{
		CommentRepo: comments,
		TicketRepo:  tickets,
		Dispatcher:  dispatcher,
	})
}

func TestAddCommentEmptyBody(t *testing.T) {
	tickets := newFakeTicketRepo()
	seedTicket(tickets, "user-1")
	svc := newCommentServiceForTest(&fakeCommentRepo{}, tickets, &captureDispatcher{})

	_, err := svc.Add(context.Background(), regularUser(), "ticket-1", "   ")
	if err == nil {
		t.Fatal("Add() error = nil, want validation failure")
	}
	if code := errorCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("code = %q, want VALIDATION_FAILED", code)
	}
}

func TestAddCommentUnknownTicket(t *testing.T) {
	svc := newCommentServiceForTest(&fakeCommentRepo{}, newFakeTicketRepo(), &captureDispatcher{})

	_, err := svc.Add(context.Background(), regularUser(), "missing", "hello")
	if err == nil {
		t.Fatal("Add() error = nil, want not found")
	}
	if code := errorCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestAddCommentPersistsAndPublishes(t *testing.T) {
	tickets := newFakeTicketRepo()
	seeded := seedTicket(tickets, "owner-9")
	comments := &fakeCommentRepo{}
	dispatcher := &captureDispatcher{}
	svc := newCommentServiceForTest(comments, tickets, dispatcher)

	actor := adminUser()
	comment, err := svc.Add(context.Background(), actor, seeded.ID, "  We are looking into this.  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if comment.Body != "We are looking into this." {
		t.Errorf("body = %q, want trimmed", comment.Body)
	}
	if comment.AuthorID != actor.ID {
		t.Errorf("author = %q, want %q", comment.AuthorID, actor.ID)
	}
	if len(comments.comments) != 1 {
		t.Fatalf("persisted %d comments, want 1", len(comments.comments))
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(dispatcher.published))
	}
	event := dispatcher.published[0]
	if event.Type != events.EventCommentAdded {
		t.Errorf("event type = %q", event.Type)
	}
	payload := event.Payload.(events.CommentAddedPayload)
	if payload.OwnerID != "owner-9" || payload.AuthorID != actor.ID {
		t.Errorf("payload = %+v", payload)
	}
}

func TestAddCommentPreviewIsBounded(t *testing.T) {
	tickets := newFakeTicketRepo()
	seeded := seedTicket(tickets, "owner-9")
	dispatcher := &captureDispatcher{}
	svc := newCommentServiceForTest(&fakeCommentRepo{}, tickets, dispatcher)

	long := strings.Repeat("x", 500)
	if _, err := svc.Add(context.Background(), regularUser(), seeded.ID, long); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	payload := dispatcher.published[0].Payload.(events.CommentAddedPayload)
	if len(payload.BodyPreview) > 120 {
		t.Errorf("preview length = %d, want <= 120", len(payload.BodyPreview))
	}
	if !strings.HasSuffix(payload.BodyPreview, "...") {
		t.Errorf("preview = %q, want ellipsis marker", payload.BodyPreview)
	}
}

func TestListCommentsChecksTicketExists(t *testing.T) {
	svc := newCommentServiceForTest(&fakeCommentRepo{}, newFakeTicketRepo(), &captureDispatcher{})

	_, err := svc.List(context.Background(), "missing")
	if err == nil {
		t.Fatal("List() error = nil, want not found")
	}
	if code := errorCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestListCommentsReturnsThread(t *testing.T) {
	tickets := newFakeTicketRepo()
	seeded := seedTicket(tickets, "owner-9")
	comments := &fakeCommentRepo{}
	svc := newCommentServiceForTest(comments, tickets, &captureDispatcher{})

	svc.Add(context.Background(), regularUser(), seeded.ID, "first")
	svc.Add(context.Background(), adminUser(), seeded.ID, "second")

	thread, err := svc.List(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("len(thread) = %d, want 2", len(thread))
	}
	if thread[0].Body != "first" || thread[1].Body != "second" {
		t.Errorf("thread order = %q, %q", thread[0].Body, thread[1].Body)
	}
}
