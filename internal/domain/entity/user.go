package entity

// Role rol de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleUser  Role = "USER"  // usuario autenticado sin privilegios
	RoleAdmin Role = "ADMIN" // gestión de usuarios y puesta en marcha
)

// User usuario autorizado del sistema. Es propietario de sus impresoras,
// trabajos, grupos y tokens; ninguna otra cuenta puede verlos ni modificarlos.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Enabled      bool
	Roles        []Role
}

// HasRole indica si el usuario tiene el rol dado (comparación exacta).
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
