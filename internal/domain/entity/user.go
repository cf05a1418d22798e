package entity

import "time"

// Roles válidos para User.
const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
)

// ValidRole indica si el rol pertenece al conjunto cerrado {Employee, Manager}.
// Se valida en el borde de autenticación; el core confía en el valor recibido.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager
}

// User representa un usuario del sistema. El rol gobierna qué operaciones
// puede ejecutar sobre las tareas; nunca se muta después del alta.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Employee, Manager
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
