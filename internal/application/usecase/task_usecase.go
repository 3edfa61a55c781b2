package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tareas-pro/internal/application/dto"
	"github.com/tu-usuario/tareas-pro/internal/domain"
	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
	"github.com/tu-usuario/tareas-pro/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas. El acceso es deliberadamente amplio:
// cualquier identidad autenticada puede operar sobre cualquier tarea
// (comportamiento documentado del sistema, sin restricción de propiedad).
type TaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso de tareas.
func NewTaskUseCase(taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo}
}

// Create crea una tarea con created_by = actor. Status por defecto pending.
func (uc *TaskUseCase) Create(ctx context.Context, actor Actor, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      status,
		AssignedTo:  normalizeAssignee(in.AssignedTo),
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	// Releer con join para devolver los nombres desnormalizados
	view, err := uc.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(view), nil
}

// Get obtiene una tarea por ID.
func (uc *TaskUseCase) Get(ctx context.Context, id string) (*dto.TaskResponse, error) {
	view, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrTaskNotFound
	}
	return dto.ToTaskResponse(view), nil
}

// List devuelve todas las tareas, más recientes primero.
func (uc *TaskUseCase) List(ctx context.Context) ([]dto.TaskResponse, error) {
	views, err := uc.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponses(views), nil
}

// Update edita una tarea con semántica de reemplazo: los campos omitidos
// conservan el valor almacenado. AssignedTo con cadena vacía limpia el asignado.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	existing, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrTaskNotFound
	}

	task := existing.Task
	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.AssignedTo != nil {
		task.AssignedTo = normalizeAssignee(in.AssignedTo)
	}
	if !entity.ValidStatus(task.Status) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.taskRepo.Update(ctx, &task); err != nil {
		return nil, err
	}
	view, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(view), nil
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.taskRepo.Delete(ctx, id)
}

// normalizeAssignee mapea cadena vacía a nil (sin asignado).
func normalizeAssignee(assignedTo *string) *string {
	if assignedTo == nil || *assignedTo == "" {
		return nil
	}
	return assignedTo
}
