package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	"github.com/openboard/issue-service/internal/auth"
	"github.com/openboard/issue-service/internal/service"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// AdminTicketsHandler serves the triage endpoints.
type AdminTicketsHandler struct {
	tickets *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(tickets *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{tickets: tickets}
}

// UpdateStatus PATCH /admin/tickets/:id/status.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ticket, err := h.tickets.UpdateStatus(c.Context(), actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Assign PATCH /admin/tickets/:id/assignee.
func (h *AdminTicketsHandler) Assign(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AssignTicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ticket, err := h.tickets.Assign(c.Context(), actor, c.Params("id"), req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Delete DELETE /admin/tickets/:id.
func (h *AdminTicketsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.tickets.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
