package repository

import (
	"context"

	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya está registrado (unicidad case-insensitive en DB).
	Create(ctx context.Context, user *entity.User) error

	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail busca por email; la comparación es case-insensitive.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List devuelve todos los usuarios.
	List(ctx context.Context) ([]*entity.User, error)

	// ListVisibleTo devuelve el employer más sus empleados directos.
	ListVisibleTo(ctx context.Context, employerID string) ([]*entity.User, error)

	// Update reemplaza name, email y password_hash del usuario.
	Update(ctx context.Context, user *entity.User) error

	// DeleteEmployee elimina al usuario id solo si es empleado directo de
	// employerID. Verifica y elimina dentro de una misma transacción.
	// Devuelve domain.ErrNotYourEmployee si no existe o no es su empleado.
	DeleteEmployee(ctx context.Context, employerID, id string) error
}
