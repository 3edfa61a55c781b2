package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tareas-pro/internal/application/dto"
	"github.com/tu-usuario/tareas-pro/internal/application/usecase"
	"github.com/tu-usuario/tareas-pro/internal/domain"
	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
	"github.com/tu-usuario/tareas-pro/pkg/hasher"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func employerActor(id string) usecase.Actor { return usecase.Actor{ID: id, Role: entity.RoleEmployer} }
func employeeActor(id string) usecase.Actor { return usecase.Actor{ID: id, Role: entity.RoleEmployee} }

// seedEmployer crea un employer directamente en el fake.
func seedEmployer(t *testing.T, repo *memUserRepo, id, name, email string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		ID: id, Name: name, Email: email, PasswordHash: "x", Role: entity.RoleEmployer,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_QuedaVinculadoAlEmployer(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")

	out, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "Eve@X.com", Password: "pw123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEmployee, out.Role, "el nuevo registro siempre es employee")
	require.NotNil(t, out.EmployerID)
	assert.Equal(t, "emp-A", *out.EmployerID, "employer_id = identidad que crea")
	assert.Equal(t, "eve@x.com", out.Email)
}

func TestCreateEmployee_EmployeeNoPuede(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo(), hasher.NewBcrypt())

	_, err := uc.CreateEmployee(context.Background(), employeeActor("emp-E"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateEmployee_EmailDuplicado_Conflicto(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")

	_, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Alicia", Email: "ALICE@x.com", Password: "pw123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestList_EmployerVeSoloSuEquipo(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	seedEmployer(t, repo, "emp-B", "Bob", "bob@x.com")
	_, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	users, err := uc.List(ctx, employerActor("emp-A"))
	require.NoError(t, err)
	assert.Len(t, users, 2, "employer ve: él mismo + sus empleados directos")
	for _, u := range users {
		assert.NotEqual(t, "emp-B", u.ID, "otro employer no aparece en el listado")
	}
}

func TestList_EmployeeVeTodos(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	seedEmployer(t, repo, "emp-B", "Bob", "bob@x.com")
	out, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	// Comportamiento documentado del sistema: cualquier rol no-employer
	// recibe el listado completo.
	users, err := uc.List(ctx, employeeActor(out.ID))
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — límites por rol y dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EmployerEditaSuEmpleado_OtroEmployerNo(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	seedEmployer(t, repo, "emp-B", "Bob", "bob@x.com")
	emp, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	nuevo := "Eva"
	// El employer B no puede tocar al empleado de A
	_, err = uc.Update(ctx, employerActor("emp-B"), emp.ID, dto.UpdateUserRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// A sí puede
	out, err := uc.Update(ctx, employerActor("emp-A"), emp.ID, dto.UpdateUserRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Eva", out.Name)
	assert.Equal(t, "eve@x.com", out.Email, "los campos omitidos conservan su valor")
}

func TestUpdate_EmployeeSoloASiMismo(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	emp, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	nuevo := "Alicia"
	_, err = uc.Update(ctx, employeeActor(emp.ID), "emp-A", dto.UpdateUserRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un employee no edita a su employer")

	propio := "Eva"
	out, err := uc.Update(ctx, employeeActor(emp.ID), emp.ID, dto.UpdateUserRequest{Name: &propio})
	require.NoError(t, err)
	assert.Equal(t, "Eva", out.Name)
}

func TestUpdate_CambioDePassword_SeRehashea(t *testing.T) {
	repo := newMemUserRepo()
	h := hasher.NewBcrypt()
	uc := usecase.NewUserUseCase(repo, h)
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	nueva := "nueva-pass"
	_, err := uc.Update(ctx, employerActor("emp-A"), "emp-A", dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	stored, _ := repo.GetByID(ctx, "emp-A")
	assert.True(t, h.Check("nueva-pass", stored.PasswordHash))
}

func TestUpdate_UsuarioInexistente_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo(), hasher.NewBcrypt())

	nuevo := "X"
	_, err := uc.Update(context.Background(), employerActor("emp-A"), "no-existe", dto.UpdateUserRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete — solo employer, solo sus empleados, nunca a sí mismo
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EmployerEliminaSuEmpleado(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	emp, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, employerActor("emp-A"), emp.ID))

	gone, _ := repo.GetByID(ctx, emp.ID)
	assert.Nil(t, gone)
}

func TestDelete_OtroEmployer_NoEncuentra(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())
	ctx := context.Background()

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	seedEmployer(t, repo, "emp-B", "Bob", "bob@x.com")
	emp, err := uc.CreateEmployee(ctx, employerActor("emp-A"), dto.CreateEmployeeRequest{
		Name: "Eve", Email: "eve@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	err = uc.Delete(ctx, employerActor("emp-B"), emp.ID)
	assert.ErrorIs(t, err, domain.ErrNotYourEmployee)

	still, _ := repo.GetByID(ctx, emp.ID)
	assert.NotNil(t, still, "el empleado de A sigue existiendo")
}

func TestDelete_AutoEliminacionProhibida(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo, hasher.NewBcrypt())

	seedEmployer(t, repo, "emp-A", "Alice", "alice@x.com")
	err := uc.Delete(context.Background(), employerActor("emp-A"), "emp-A")
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestDelete_EmployeeNoPuede(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo(), hasher.NewBcrypt())

	err := uc.Delete(context.Background(), employeeActor("emp-E"), "otro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
