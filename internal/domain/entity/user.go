package entity

import "time"

// Roles válidos para User. Conjunto cerrado: el gate de autorización
// hace matching exhaustivo sobre estos tres valores.
const (
	RoleCustomer     = "customer"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// ValidRole reporta si role pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

// User representa una cuenta del marketplace.
// PasswordHash nunca sale del dominio hacia una respuesta HTTP: los DTOs no lo
// incluyen y el middleware de autenticación lo limpia antes de adjuntar el usuario.
type User struct {
	ID           string
	Email        string // único a nivel de DB (índice unique)
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Name         string
	Role         string // customer, professional, admin
	Phone        string
	Picture      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
