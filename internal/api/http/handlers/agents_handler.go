package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/api/dto"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	"github.com/spec-kit/helpdesk-admin/internal/forms"
	"github.com/spec-kit/helpdesk-admin/internal/service"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util/errorutil"
)

// AgentsHandler exposes the agent create/edit endpoints, driving an agent
// form controller per request.
type AgentsHandler struct {
	agents    *service.AgentService
	directory *service.DirectoryService
	logger    *zap.Logger
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(agents *service.AgentService, directory *service.DirectoryService, logger *zap.Logger) *AgentsHandler {
	return &AgentsHandler{agents: agents, directory: directory, logger: logger}
}

// Create handles POST /admin/agents.
func (h *AgentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AgentUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	agent, err := h.submitAgentForm(c.Context(), forms.AgentFormInit{}, req, false, func(ctx context.Context, data forms.AgentFormData) (*domain.Agent, error) {
		return h.agents.Create(ctx, data)
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"agent": agentResponse(agent)},
	})
}

// Update handles PUT /admin/agents/:id.
func (h *AgentsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewBadRequest("agent id required")
	}

	var req dto.AgentUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	agent, err := h.submitAgentForm(c.Context(), forms.AgentFormInit{}, req, true, func(ctx context.Context, data forms.AgentFormData) (*domain.Agent, error) {
		return h.agents.Update(ctx, id, data)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"agent": agentResponse(agent)},
	})
}

// submitAgentForm runs the request through an agent form controller: open
// (which pulls department options from the directory), apply the submitted
// fields, submit. Validation failures surface the field error map;
// submission failures surface the form's banner message.
func (h *AgentsHandler) submitAgentForm(
	ctx context.Context,
	init forms.AgentFormInit,
	req dto.AgentUpsertRequest,
	isEdit bool,
	persist func(context.Context, forms.AgentFormData) (*domain.Agent, error),
) (*domain.Agent, error) {
	var (
		saved      *domain.Agent
		persistErr error
	)

	form := forms.NewAgentForm(forms.AgentFormConfig{
		IsEdit: isEdit,
		Lister: h.directory,
		Logger: h.logger,
		OnSubmit: func(ctx context.Context, data forms.AgentFormData) error {
			agent, err := persist(ctx, data)
			if err != nil {
				persistErr = err
				return err
			}
			saved = agent
			return nil
		},
	})

	init.Name = req.Name
	init.Email = req.Email
	init.Phone = req.Phone
	init.Status = forms.AgentStatus(req.Status)
	init.Categories = req.CategoryIDs

	form.Open(ctx, init)
	form.SetField(forms.FieldPassword, req.Password)
	form.Submit(ctx)

	if saved != nil {
		return saved, nil
	}
	if persistErr != nil {
		return nil, apperrors.MapError(persistErr)
	}
	return nil, apperrors.NewValidationError("validation failed", form.Errors().Details())
}

func agentResponse(agent *domain.Agent) dto.AgentResponse {
	return dto.AgentResponse{
		ID:            agent.ID,
		Name:          agent.Name,
		Email:         agent.Email,
		Phone:         agent.Phone,
		Availability:  string(agent.Availability),
		DepartmentIDs: agent.DepartmentIDs,
	}
}
