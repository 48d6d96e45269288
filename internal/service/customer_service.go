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

// CustomerService persists validated customer form submissions.
type CustomerService struct {
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, dispatcher events.Dispatcher, bcryptCost int) *CustomerService {
	return &CustomerService{customers: customers, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// Create stores a new customer from validated form data.
func (s *CustomerService) Create(ctx context.Context, data forms.CustomerFormData) (*domain.Customer, error) {
	if _, err := s.customers.GetByEmail(ctx, data.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{
			forms.FieldEmail: "Email is already in use",
		})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(data.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: hash,
		Status:       domain.CustomerStatusActive,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCustomerCreated, customer)
	return customer, nil
}

// Update applies validated form data to an existing customer. A blank
// password keeps the stored credential; the edit form never validates it.
func (s *CustomerService) Update(ctx context.Context, id string, data forms.CustomerFormData) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, err
	}

	if data.Email != customer.Email {
		if _, err := s.customers.GetByEmail(ctx, data.Email); err == nil {
			return nil, apperrors.NewConflict("email already registered", map[string]any{
				forms.FieldEmail: "Email is already in use",
			})
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
	}

	customer.Name = data.Name
	customer.Email = data.Email
	customer.PhoneNumber = data.PhoneNumber
	if data.Password != "" {
		hash, err := auth.HashPassword(data.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCustomerUpdated, customer)
	return customer, nil
}

func (s *CustomerService) publish(ctx context.Context, eventType events.EventType, customer *domain.Customer) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		SubjectID: customer.ID,
		Payload: events.CustomerPayload{
			Name:   customer.Name,
			Email:  customer.Email,
			Status: customer.Status,
		},
	})
}
