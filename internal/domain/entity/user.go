package entity

import "time"

// Roles válidos para User.
const (
	RoleEmployer = "employer"
	RoleEmployee = "employee"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleEmployer || role == RoleEmployee
}

// User representa un usuario del sistema.
// EmployerID solo se setea cuando Role es employee y referencia al employer
// que lo creó; para un employer siempre es nil. Si el employer se elimina,
// la DB limpia la referencia (ON DELETE SET NULL), no elimina al empleado.
type User struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas; unicidad case-insensitive en DB
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // employer, employee
	EmployerID   *string
	CreatedAt    time.Time
}

// IsEmployer indica si el usuario tiene rol employer.
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// WorksFor indica si el usuario es empleado directo del employer indicado.
func (u *User) WorksFor(employerID string) bool {
	return u.EmployerID != nil && *u.EmployerID == employerID
}
