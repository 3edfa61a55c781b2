package dto

import (
	"time"

	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
)

// CreateTaskRequest entrada para crear una tarea. Status opcional (pending).
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	AssignedTo  *string `json:"assigned_to"`
}

// UpdateTaskRequest entrada para actualizar una tarea. Los campos omitidos
// conservan el valor almacenado; AssignedTo con cadena vacía limpia el asignado.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
}

// TaskResponse salida de una tarea con los nombres desnormalizados.
type TaskResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	AssignedTo     *string   `json:"assigned_to"`
	AssignedToName *string   `json:"assigned_to_name"`
	CreatedBy      string    `json:"created_by"`
	CreatedByName  *string   `json:"created_by_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToTaskResponse convierte la vista de tarea a su representación pública.
func ToTaskResponse(t *entity.TaskView) *TaskResponse {
	if t == nil {
		return nil
	}
	return &TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		AssignedTo:     t.AssignedTo,
		AssignedToName: t.AssignedToName,
		CreatedBy:      t.CreatedBy,
		CreatedByName:  t.CreatedByName,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToTaskResponses convierte un listado de vistas.
func ToTaskResponses(tasks []*entity.TaskView) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *ToTaskResponse(t))
	}
	return out
}
