package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	"github.com/openboard/issue-service/internal/domain"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// UserLister resolves the account directory for the admin view.
type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

// UsersHandler serves the admin user directory (assignment targets).
type UsersHandler struct {
	users UserLister
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users UserLister) *UsersHandler {
	return &UsersHandler{users: users}
}

// List GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}
