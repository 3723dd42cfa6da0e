package dto

import "time"

// RegisterRequest cadastro de usuário.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Nome     string  `json:"nome"`
	Role     string  `json:"role"`
	FilialID *string `json:"filial_id"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representação de usuário (nunca expõe o hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Role      string    `json:"role"`
	FilialID  *string   `json:"filial_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
