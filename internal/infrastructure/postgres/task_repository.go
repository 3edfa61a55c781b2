package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/tareas-pro/internal/domain"
	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
	"github.com/tu-usuario/tareas-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// taskJoin lectura enriquecida: nombres del asignado y del creador vía LEFT JOIN.
const taskJoin = `
	SELECT t.id, t.title, t.description, t.status, t.assigned_to, t.created_by,
	       t.created_at, t.updated_at,
	       u1.name AS assigned_to_name,
	       u2.name AS created_by_name
	FROM tasks t
	LEFT JOIN users u1 ON t.assigned_to = u1.id
	LEFT JOIN users u2 ON t.created_by  = u2.id`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.AssignedTo, task.CreatedBy,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea con nombres. Devuelve (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.TaskView, error) {
	return r.scanView(r.pool.QueryRow(ctx, taskJoin+` WHERE t.id = $1`, id))
}

func (r *TaskRepo) scanView(row pgx.Row) (*entity.TaskView, error) {
	var t entity.TaskView
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssignedTo, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt, &t.AssignedToName, &t.CreatedByName)
	if err != nil {
		// Un id malformado (22P02) equivale a no encontrar la fila
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// List devuelve todas las tareas, más recientes primero.
func (r *TaskRepo) List(ctx context.Context) ([]*entity.TaskView, error) {
	rows, err := r.pool.Query(ctx, taskJoin+` ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaskView
	for rows.Next() {
		var t entity.TaskView
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssignedTo, &t.CreatedBy,
			&t.CreatedAt, &t.UpdatedAt, &t.AssignedToName, &t.CreatedByName); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update reemplaza los campos mutables y refresca updated_at.
func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, status = $4, assigned_to = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.AssignedTo,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete elimina la tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
