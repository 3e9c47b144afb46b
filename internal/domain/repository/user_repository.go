package repository

import "github.com/wsantos/estoque-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste el usuario. Retorna domain.ErrDuplicate si el username ya existe.
	Create(user *entity.User) error
	// FindByUsername devuelve (nil, nil) si el usuario no existe.
	FindByUsername(username string) (*entity.User, error)
}
