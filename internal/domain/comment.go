package domain

import "time"

// Comment is a single remark on a ticket. Comments are append-only and are
// removed only as a cascade of ticket deletion.
type Comment struct {
	ID        string
	TicketID  string
	AuthorID  string
	Body      string
	CreatedAt time.Time
}

// CommentWithAuthor annotates a comment with the author's display identity.
type CommentWithAuthor struct {
	Comment
	AuthorUsername string
	AuthorEmail    string
}
