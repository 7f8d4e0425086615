package dto

import (
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentResponse is one thread entry with author display identity.
type CommentResponse struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	AuthorEmail    string    `json:"author_email,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCommentResponse maps a bare comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}

// NewCommentResponses maps an annotated thread.
func NewCommentResponses(comments []domain.CommentWithAuthor) []CommentResponse {
	items := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		items = append(items, CommentResponse{
			ID:             c.ID,
			TicketID:       c.TicketID,
			AuthorID:       c.AuthorID,
			AuthorUsername: c.AuthorUsername,
			AuthorEmail:    c.AuthorEmail,
			Text:           c.Body,
			CreatedAt:      c.CreatedAt,
		})
	}
	return items
}
