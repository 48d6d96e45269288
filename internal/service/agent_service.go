package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-admin/internal/auth"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	"github.com/spec-kit/helpdesk-admin/internal/events"
	"github.com/spec-kit/helpdesk-admin/internal/forms"
	"github.com/spec-kit/helpdesk-admin/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util/errorutil"
)

// AgentService persists validated agent form submissions.
type AgentService struct {
	agents      repository.AgentRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	bcryptCost  int
}

// NewAgentService builds the service.
func NewAgentService(agents repository.AgentRepository, departments repository.DepartmentRepository, dispatcher events.Dispatcher, bcryptCost int) *AgentService {
	return &AgentService{agents: agents, departments: departments, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// Create stores a new agent from validated form data. The form has already
// restored the phone's country prefix and guaranteed a non-empty department
// selection; the service re-checks the referenced departments exist.
func (s *AgentService) Create(ctx context.Context, data forms.AgentFormData) (*domain.Agent, error) {
	if _, err := s.agents.GetByEmail(ctx, data.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{
			forms.FieldEmail: "Email is already in use",
		})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	if err := s.checkDepartments(ctx, data.CategoryIDs); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(data.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	agent := &domain.Agent{
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		PasswordHash:  hash,
		Availability:  domain.AgentAvailability(data.Status),
		DepartmentIDs: data.CategoryIDs,
	}
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventAgentCreated, agent)
	return agent, nil
}

// Update applies validated form data to an existing agent. A blank password
// keeps the stored credential.
func (s *AgentService) Update(ctx context.Context, id string, data forms.AgentFormData) (*domain.Agent, error) {
	agent, err := s.agents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("agent", map[string]any{"id": id})
		}
		return nil, err
	}

	if data.Email != agent.Email {
		if _, err := s.agents.GetByEmail(ctx, data.Email); err == nil {
			return nil, apperrors.NewConflict("email already registered", map[string]any{
				forms.FieldEmail: "Email is already in use",
			})
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
	}

	if err := s.checkDepartments(ctx, data.CategoryIDs); err != nil {
		return nil, err
	}

	agent.Name = data.Name
	agent.Email = data.Email
	agent.Phone = data.Phone
	agent.Availability = domain.AgentAvailability(data.Status)
	agent.DepartmentIDs = data.CategoryIDs
	if data.Password != "" {
		hash, err := auth.HashPassword(data.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		agent.PasswordHash = hash
	}

	if err := s.agents.Update(ctx, agent); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventAgentUpdated, agent)
	return agent, nil
}

func (s *AgentService) checkDepartments(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.departments.GetByID(ctx, id); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewValidationError("unknown department", map[string]any{
					forms.FieldDepartment: "Department " + id + " does not exist",
				})
			}
			return err
		}
	}
	return nil
}

func (s *AgentService) publish(ctx context.Context, eventType events.EventType, agent *domain.Agent) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		SubjectID: agent.ID,
		Payload: events.AgentPayload{
			Name:          agent.Name,
			Email:         agent.Email,
			Availability:  agent.Availability,
			DepartmentIDs: agent.DepartmentIDs,
		},
	})
}
