package repository

import "github.com/jportela/almoxarifado-api/internal/domain/entity"

// UserRepository porta de persistência de usuários.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
