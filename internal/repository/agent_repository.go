package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// AgentRepository defines persistence access for agent accounts, including
// their department assignments.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) error
	Update(ctx context.Context, agent *domain.Agent) error
	GetByID(ctx context.Context, id string) (*domain.Agent, error)
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)
}

type agentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository returns a Postgres-backed implementation.
func NewAgentRepository(pool *pgxpool.Pool) AgentRepository {
	return &agentRepository{pool: pool}
}

func (r *agentRepository) Create(ctx context.Context, agent *domain.Agent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO agents (name, email, phone, password_hash, availability)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, query,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.PasswordHash,
		agent.Availability,
	).Scan(&agent.ID, &agent.CreatedAt, &agent.UpdatedAt); err != nil {
		return err
	}

	if err := replaceDepartments(ctx, tx, agent.ID, agent.DepartmentIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *agentRepository) Update(ctx context.Context, agent *domain.Agent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        UPDATE agents SET name=$1, email=$2, phone=$3, password_hash=$4, availability=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := tx.Exec(ctx, query,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.PasswordHash,
		agent.Availability,
		agent.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := replaceDepartments(ctx, tx, agent.ID, agent.DepartmentIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *agentRepository) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	const query = `
        SELECT id, name, email, phone, password_hash, availability, created_at, updated_at
        FROM agents WHERE id=$1`
	return r.loadOne(ctx, r.pool.QueryRow(ctx, query, id))
}

func (r *agentRepository) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	const query = `
        SELECT id, name, email, phone, password_hash, availability, created_at, updated_at
        FROM agents WHERE email=$1`
	return r.loadOne(ctx, r.pool.QueryRow(ctx, query, email))
}

func (r *agentRepository) loadOne(ctx context.Context, row pgx.Row) (*domain.Agent, error) {
	var agent domain.Agent
	if err := row.Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.Phone,
		&agent.PasswordHash,
		&agent.Availability,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	); err != nil {
		return nil, err
	}

	const deptQuery = `
        SELECT department_id FROM agent_departments
        WHERE agent_id=$1 ORDER BY position`
	rows, err := r.pool.Query(ctx, deptQuery, agent.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var deptID string
		if err := rows.Scan(&deptID); err != nil {
			return nil, err
		}
		agent.DepartmentIDs = append(agent.DepartmentIDs, deptID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &agent, nil
}

// replaceDepartments rewrites the agent's department assignments, keeping
// the form's selection order.
func replaceDepartments(ctx context.Context, tx pgx.Tx, agentID string, departmentIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM agent_departments WHERE agent_id=$1`, agentID); err != nil {
		return err
	}
	for pos, deptID := range departmentIDs {
		const insert = `
            INSERT INTO agent_departments (agent_id, department_id, position)
            VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insert, agentID, deptID, pos); err != nil {
			return err
		}
	}
	return nil
}
