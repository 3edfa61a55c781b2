package repository

import (
	"context"

	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
)

// TaskRepository puerto de persistencia para tareas.
// Las lecturas devuelven TaskView (con nombres de asignado y creador).
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error

	// GetByID devuelve (nil, nil) si la tarea no existe.
	GetByID(ctx context.Context, id string) (*entity.TaskView, error)

	// List devuelve todas las tareas, más recientes primero.
	List(ctx context.Context) ([]*entity.TaskView, error)

	// Update reemplaza title, description, status y assigned_to.
	Update(ctx context.Context, task *entity.Task) error

	// Delete elimina la tarea. Devuelve domain.ErrTaskNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
