package domain

import "time"

// AgentAvailability is the agent's console availability toggle.
type AgentAvailability string

const (
	AgentOnline  AgentAvailability = "online"
	AgentOffline AgentAvailability = "offline"
)

// Agent models a support agent account. Phone is stored in E.164 form with
// its country prefix; DepartmentIDs holds the departments the agent serves.
type Agent struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	Availability  AgentAvailability
	DepartmentIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
