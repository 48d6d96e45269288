package events

import (
	"time"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerCreated EventType = "customer_created"
	EventCustomerUpdated EventType = "customer_updated"
	EventAgentCreated    EventType = "agent_created"
	EventAgentUpdated    EventType = "agent_updated"
)

// Event represents a domain event emitted by services after an admin form
// submission lands.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CustomerPayload payload for customer lifecycle events.
type CustomerPayload struct {
	Name   string                `json:"name"`
	Email  string                `json:"email"`
	Status domain.CustomerStatus `json:"status"`
}

// AgentPayload payload for agent lifecycle events.
type AgentPayload struct {
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Availability  domain.AgentAvailability `json:"availability"`
	DepartmentIDs []string                 `json:"department_ids"`
}
