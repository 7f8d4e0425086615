package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	"github.com/openboard/issue-service/internal/auth"
	"github.com/openboard/issue-service/internal/domain"
	"github.com/openboard/issue-service/internal/service"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// TicketsHandler serves the shared community board endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ticket, err := h.tickets.CreateTicket(c.Context(), actor, service.TicketCreateInput{
		Title:            req.Title,
		Description:      req.Description,
		StepsToReproduce: req.StepsToReproduce,
		Type:             domain.TicketType(req.Type),
		Category:         domain.Category(req.Category),
		Attachment:       req.Attachment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input := service.TicketListInput{
		Scope:    service.ScopeAll,
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Severity: c.Query("severity"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
	}
	if c.Query("scope") == string(service.ScopeMine) {
		input.Scope = service.ScopeMine
	}
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), 50)
	input.Offset = (page - 1) * pageSize
	input.Limit = pageSize

	tickets, err := h.tickets.ListTickets(c.Context(), actor, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponses(tickets)})
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

func parsePositiveInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
