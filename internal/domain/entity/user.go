package entity

import "strings"

// Role rol de un usuario del café (enum cerrado).
type Role string

// Roles válidos para User.
const (
	RoleCustomer Role = "Customer"
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
)

// ParseRole normaliza el valor persistido en Users.type y lo valida contra el
// enum. La columna es CHAR con padding, así que puede llegar con espacios al
// final ("Manager "); se recorta antes de comparar.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.TrimSpace(s)) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleEmployee:
		return RoleEmployee, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

// IsStaff indica si el rol puede operar sobre pedidos de otros usuarios
// (marcar pagado, cambiar estado de ítems, ver pedidos en curso).
func (r Role) IsStaff() bool {
	return r == RoleEmployee || r == RoleManager
}

// User representa un usuario del sistema, identificado por su login.
type User struct {
	Login        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	PhoneNum     string
	FavItems     string
	Role         Role
}
