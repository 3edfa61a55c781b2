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
	"github.com/tu-usuario/tareas-pro/pkg/hasher"
)

// Actor identidad autenticada que ejecuta la operación, extraída de los claims
// del token de acceso (no se re-consulta la DB por request).
type Actor struct {
	ID   string
	Role string
}

// IsEmployer indica si el actor tiene rol employer.
func (a Actor) IsEmployer() bool {
	return a.Role == entity.RoleEmployer
}

// UserUseCase casos de uso de usuarios. La política de autorización vive aquí:
// los handlers solo traducen los errores de dominio a códigos HTTP.
type UserUseCase struct {
	userRepo repository.UserRepository
	hasher   hasher.Hasher
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, h hasher.Hasher) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, hasher: h}
}

// List lista usuarios según el rol del actor: un employer ve solo a sí mismo y
// a sus empleados directos; cualquier otro rol ve el listado completo
// (comportamiento documentado del sistema, deliberadamente amplio).
func (uc *UserUseCase) List(ctx context.Context, actor Actor) ([]dto.UserResponse, error) {
	var (
		users []*entity.User
		err   error
	)
	if actor.IsEmployer() {
		users, err = uc.userRepo.ListVisibleTo(ctx, actor.ID)
	} else {
		users, err = uc.userRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// Get obtiene un usuario por ID; abierto a cualquier identidad autenticada.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// CreateEmployee crea un empleado vinculado al employer que lo crea.
// Solo un employer puede hacerlo; el nuevo registro siempre queda con rol
// employee y employer_id = actor.
func (uc *UserUseCase) CreateEmployee(ctx context.Context, actor Actor, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if !actor.IsEmployer() {
		return nil, domain.ErrForbidden
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	employerID := actor.ID
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         entity.RoleEmployee,
		EmployerID:   &employerID,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Update edita un usuario con semántica de reemplazo: los campos omitidos
// conservan el valor almacenado. Política: un employer puede editarse a sí
// mismo o a un empleado directo; un employee solo a sí mismo.
func (uc *UserUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	target, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	if actor.IsEmployer() {
		if target.ID != actor.ID && !target.WorksFor(actor.ID) {
			return nil, domain.ErrForbidden
		}
	} else if target.ID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		target.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		target.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(target), nil
}

// Delete elimina un empleado directo del employer actor.
// Auto-eliminación prohibida (domain.ErrSelfDelete). Si el objetivo no existe o
// no es empleado del actor, domain.ErrNotYourEmployee (se responde 404 sin
// distinguir los dos casos). Los cascades de la DB eliminan las tareas creadas
// por el empleado y limpian las asignaciones.
func (uc *UserUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsEmployer() {
		return domain.ErrForbidden
	}
	if id == actor.ID {
		return domain.ErrSelfDelete
	}
	return uc.userRepo.DeleteEmployee(ctx, actor.ID, id)
}
