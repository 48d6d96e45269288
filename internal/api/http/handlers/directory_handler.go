package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/api/dto"
	"github.com/spec-kit/helpdesk-admin/internal/service"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util/errorutil"
)

// DirectoryHandler serves the department listing consumed by the agent
// form's multi-select.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List handles GET /admin/departments.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.directory.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	departments := make([]dto.DepartmentResponse, 0, len(categories))
	for _, cat := range categories {
		departments = append(departments, dto.DepartmentResponse(cat))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"departments": departments},
	})
}
