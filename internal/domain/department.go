package domain

import "time"

// Department is the organizational unit agents are assigned to. The admin
// forms reference departments by id only; the directory serves {id, name}
// pairs.
type Department struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
