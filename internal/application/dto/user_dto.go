package dto

import (
	"time"

	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// UpdateUserRequest patch parcial de usuario: solo los campos no-nil se aplican.
type UpdateUserRequest struct {
	FullName *string `json:"nombre_completo"`
	Active   *bool   `json:"activo"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	Username  string     `json:"username"`
	Role      string     `json:"rol"`
	FullName  string     `json:"nombre_completo"`
	Active    bool       `json:"activo"`
	CreatedAt time.Time  `json:"fecha_creacion"`
	LastLogin *time.Time `json:"ultimo_acceso"`
}

// NewUserResponse proyecta la entidad a su forma de salida.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Role:      u.Role,
		FullName:  u.FullName,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
