package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	"github.com/openboard/issue-service/internal/auth"
	"github.com/openboard/issue-service/internal/service"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// CommentsHandler serves ticket thread endpoints.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// Create POST /tickets/:id/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.comments.Add(c.Context(), actor, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// List GET /tickets/:id/comments.
func (h *CommentsHandler) List(c *fiber.Ctx) error {
	comments, err := h.comments.List(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponses(comments)})
}
