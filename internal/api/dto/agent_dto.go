package dto

import (
	"encoding/json"
	"fmt"

	"github.com/spec-kit/helpdesk-admin/internal/forms"
)

// AgentUpsertRequest carries the agent form's submitted fields. Phone may
// arrive with or without the "+1" prefix; the form normalizes it either way.
type AgentUpsertRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Password    string         `json:"password"`
	Status      string         `json:"status"`
	CategoryIDs CategoryIDList `json:"category_ids"`
}

// CategoryIDList accepts department references as either bare id strings or
// {id, name} records, mirroring the two shapes callers supply them in.
type CategoryIDList []forms.CategoryInput

// UnmarshalJSON decodes the mixed representation into the category sum type.
func (l *CategoryIDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	inputs := make([]forms.CategoryInput, 0, len(raw))
	for _, item := range raw {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			inputs = append(inputs, forms.RawID(id))
			continue
		}
		var ref struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &ref); err != nil {
			return fmt.Errorf("category reference must be a string or an {id, name} object: %w", err)
		}
		inputs = append(inputs, forms.CategoryRef{ID: ref.ID, Name: ref.Name})
	}
	*l = inputs
	return nil
}

// AgentResponse is the public view of an agent account.
type AgentResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Availability  string   `json:"availability"`
	DepartmentIDs []string `json:"department_ids"`
}

// DepartmentResponse is a directory listing entry.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
