package dto

import (
	"time"

	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
)

// SignupRequest entrada para registro. Role es opcional (por defecto employee).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=employer employee"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login. Los tokens viajan en cookies, no en el cuerpo.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CreateEmployeeRequest entrada para que un employer cree un empleado
// (password en texto, se hashea en el use case).
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario. Los campos omitidos
// conservan el valor almacenado; Password solo se re-hashea si viene presente.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	EmployerID *string   `json:"employer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		EmployerID: u.EmployerID,
		CreatedAt:  u.CreatedAt,
	}
}

// ToUserResponses convierte un listado de entidades.
func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out
}
