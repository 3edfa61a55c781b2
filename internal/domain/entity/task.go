package entity

import "time"

// Estados válidos para Task.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidStatus indica si el estado es uno de los soportados.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task representa una tarea.
// CreatedBy siempre referencia un usuario vivo: eliminar al creador elimina
// sus tareas (ON DELETE CASCADE). AssignedTo en cambio solo se limpia
// (ON DELETE SET NULL) si el asignado desaparece.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string // pending, in_progress, completed
	AssignedTo  *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskView es la lectura enriquecida de una tarea: incluye los nombres del
// asignado y del creador, desnormalizados con LEFT JOIN sobre users.
type TaskView struct {
	Task
	AssignedToName *string
	CreatedByName  *string
}
