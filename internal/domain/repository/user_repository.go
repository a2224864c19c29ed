package repository

import "github.com/tu-usuario/tiendita-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByUsername busca por coincidencia exacta (case-sensitive).
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	All() ([]*entity.User, error)
}
