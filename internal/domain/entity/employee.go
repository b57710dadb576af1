package entity

import (
	"strings"
	"time"
)

// RoleAdmin es el rol que otorga autorización elevada.
const RoleAdmin = "admin"

// Employee representa una cuenta de empleado del sistema.
// PasswordHash siempre es un hash bcrypt en reposo: nunca texto plano,
// nunca se loguea y nunca se serializa en respuestas de la API.
type Employee struct {
	ID           int64
	Username     string // único
	Fullname     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// IsAdmin indica si el rol del empleado otorga autorización elevada.
// La comparación es case-insensitive ("Admin" y "ADMIN" también elevan).
func (e *Employee) IsAdmin() bool {
	return strings.EqualFold(e.Role, RoleAdmin)
}
