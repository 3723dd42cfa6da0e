package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGestor   = "gestor"
	RoleConsulta = "consulta"
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Nome         string
	Role         string  // admin, gestor, consulta
	FilialID     *string // nil = acesso a todas as filiais
	Status       string  // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
