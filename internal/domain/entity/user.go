package entity

import "time"

// User usuário da aplicação (login por email + senha bcrypt).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
