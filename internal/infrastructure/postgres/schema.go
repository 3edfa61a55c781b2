package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema crea las tablas si no existen. No crea la base de datos
// (los proveedores cloud lo prohíben); asume que ya existe.
//
// Semántica de borrado:
//   - users.employer_id  ON DELETE SET NULL: borrar un employer desvincula a sus empleados.
//   - tasks.created_by   ON DELETE CASCADE:  borrar al creador borra sus tareas.
//   - tasks.assigned_to  ON DELETE SET NULL: borrar al asignado solo limpia la referencia.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			name          VARCHAR(150) NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(20)  NOT NULL DEFAULT 'employee'
			              CHECK (role IN ('employer','employee')),
			employer_id   UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Unicidad case-insensitive del email
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email))`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id          UUID PRIMARY KEY,
			title       VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status      VARCHAR(20) NOT NULL DEFAULT 'pending'
			            CHECK (status IN ('pending','in_progress','completed')),
			assigned_to UUID REFERENCES users(id) ON DELETE SET NULL,
			created_by  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
