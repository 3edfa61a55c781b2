package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/tareas-pro/internal/domain"
	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
)

// Fakes en memoria de los repositorios, con la misma semántica que PostgreSQL:
// unicidad de email case-insensitive y cascades al borrar usuarios.

type memUserRepo struct {
	users map[string]*entity.User
	tasks *memTaskRepo // para simular los cascades de la DB (puede ser nil)
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sortUsers(out)
	return out, nil
}

func (m *memUserRepo) ListVisibleTo(_ context.Context, employerID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if u.ID == employerID || u.WorksFor(employerID) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sortUsers(out)
	return out, nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, u := range m.users {
		if u.ID != user.ID && strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) DeleteEmployee(_ context.Context, employerID, id string) error {
	u, ok := m.users[id]
	if !ok || !u.WorksFor(employerID) {
		return domain.ErrNotYourEmployee
	}
	m.removeUser(id)
	return nil
}

// removeUser replica los cascades: created_by CASCADE, assigned_to SET NULL,
// employer_id SET NULL.
func (m *memUserRepo) removeUser(id string) {
	delete(m.users, id)
	for _, u := range m.users {
		if u.EmployerID != nil && *u.EmployerID == id {
			u.EmployerID = nil
		}
	}
	if m.tasks == nil {
		return
	}
	for tid, task := range m.tasks.tasks {
		if task.CreatedBy == id {
			delete(m.tasks.tasks, tid)
			continue
		}
		if task.AssignedTo != nil && *task.AssignedTo == id {
			task.AssignedTo = nil
		}
	}
}

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
}

type memTaskRepo struct {
	users *memUserRepo // para los nombres del join (puede ser nil)
	tasks map[string]*entity.Task
}

func newMemTaskRepo(users *memUserRepo) *memTaskRepo {
	r := &memTaskRepo{users: users, tasks: map[string]*entity.Task{}}
	if users != nil {
		users.tasks = r
	}
	return r
}

func (m *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memTaskRepo) GetByID(_ context.Context, id string) (*entity.TaskView, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return m.view(t), nil
}

func (m *memTaskRepo) List(_ context.Context) ([]*entity.TaskView, error) {
	var out []*entity.TaskView
	for _, t := range m.tasks {
		out = append(out, m.view(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memTaskRepo) Update(_ context.Context, task *entity.Task) error {
	if _, ok := m.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memTaskRepo) view(t *entity.Task) *entity.TaskView {
	cp := *t
	v := &entity.TaskView{Task: cp}
	if m.users == nil {
		return v
	}
	if t.AssignedTo != nil {
		if u, ok := m.users.users[*t.AssignedTo]; ok {
			name := u.Name
			v.AssignedToName = &name
		}
	}
	if u, ok := m.users.users[t.CreatedBy]; ok {
		name := u.Name
		v.CreatedByName = &name
	}
	return v
}
