package jsonstore

import (
	"github.com/rs/zerolog"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre usuarios.json.
type UserRepository struct {
	col *collection[entity.User]
}

// NewUserRepository abre (o crea vacío en memoria) el archivo de usuarios.
func NewUserRepository(path string, log zerolog.Logger) *UserRepository {
	return &UserRepository{col: openCollection[entity.User](path, log)}
}

// Create agrega el usuario. Falla con ErrDuplicate si el username ya existe
// (comparación exacta, case-sensitive).
func (r *UserRepository) Create(user *entity.User) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for _, u := range r.col.items {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.col.items = append(r.col.items, &cp)
	r.col.save()
	return nil
}

// GetByUsername busca por username exacto. (nil, nil) si no hay coincidencia.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for _, u := range r.col.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo username. ErrNotFound si no existe.
func (r *UserRepository) Update(user *entity.User) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for i, u := range r.col.items {
		if u.Username == user.Username {
			cp := *user
			r.col.items[i] = &cp
			r.col.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// All devuelve copias de todos los usuarios en orden de archivo.
func (r *UserRepository) All() ([]*entity.User, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	out := make([]*entity.User, 0, len(r.col.items))
	for _, u := range r.col.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
