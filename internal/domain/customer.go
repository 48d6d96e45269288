package domain

import "time"

// CustomerStatus represents lifecycle states for a customer account.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

// Customer is the domain model for end-users managed through the admin
// console.
type Customer struct {
	ID           string
	Name         string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Status       CustomerStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
