package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/api/dto"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	"github.com/spec-kit/helpdesk-admin/internal/forms"
	"github.com/spec-kit/helpdesk-admin/internal/service"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util/errorutil"
)

// CustomersHandler exposes the customer create/edit endpoints. Each request
// drives a customer form controller: seed, apply the submitted fields,
// submit. Field failures come back as a per-field details map.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// Create handles POST /admin/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	data, errs := runCustomerForm(forms.CustomerFormData{}, req, false)
	if errs != nil {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	customer, err := h.customers.Create(c.Context(), data)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"customer": customerResponse(customer)},
	})
}

// Update handles PUT /admin/customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewBadRequest("customer id required")
	}

	var req dto.CustomerUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	data, errs := runCustomerForm(forms.CustomerFormData{}, req, true)
	if errs != nil {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	customer, err := h.customers.Update(c.Context(), id, data)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"customer": customerResponse(customer)},
	})
}

// runCustomerForm pushes the request through a form controller exactly the
// way the dialog does: open seeded, write each field, submit. It returns
// the validated payload, or the error map when validation blocks the
// submit.
func runCustomerForm(initial forms.CustomerFormData, req dto.CustomerUpsertRequest, isEdit bool) (forms.CustomerFormData, forms.ValidationErrors) {
	var submitted *forms.CustomerFormData
	form := forms.NewCustomerForm(forms.CustomerFormConfig{
		IsEdit: isEdit,
		OnSubmit: func(data forms.CustomerFormData) {
			submitted = &data
		},
	})
	form.Open(initial)
	form.SetField(forms.FieldName, req.Name)
	form.SetField(forms.FieldEmail, req.Email)
	form.SetField(forms.FieldPhoneNumber, req.PhoneNumber)
	form.SetField(forms.FieldPassword, req.Password)

	if !form.Submit() || submitted == nil {
		return forms.CustomerFormData{}, form.Errors()
	}
	return *submitted, nil
}

func customerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Status:      string(customer.Status),
	}
}
