package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tiendita-pos/internal/application/dto"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/internal/domain/repository"
)

// Session es la sesión del proceso: a lo más un usuario actual por instancia.
type Session struct {
	ID        string
	User      *entity.User
	StartedAt time.Time
}

// UseCase casos de uso de autenticación: login/logout, gestión de usuarios y
// verificación de permisos. Es el único dueño de la sesión actual.
type UseCase struct {
	users   repository.UserRepository
	session *Session
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Login valida credenciales. El username se compara recortado y en minúsculas;
// decide la primera coincidencia (no se asume que la unicidad se haya
// garantizado al escribir el archivo). En éxito fija la sesión, sella el
// último acceso y persiste la lista de usuarios.
func (uc *UseCase) Login(username, password string) (*Session, error) {
	needle := strings.ToLower(strings.TrimSpace(username))
	users, err := uc.users.All()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.ToLower(strings.TrimSpace(u.Username)) != needle {
			continue
		}
		if !u.Active {
			return nil, domain.ErrUserInactive
		}
		if !u.VerifyPassword(password) {
			return nil, domain.ErrInvalidCredential
		}
		u.TouchLastLogin()
		_ = uc.users.Update(u)
		uc.session = &Session{
			ID:        uuid.New().String(),
			User:      u,
			StartedAt: time.Now(),
		}
		return uc.session, nil
	}
	return nil, domain.ErrInvalidCredential
}

// Logout limpia la sesión actual. No tiene efecto en disco.
func (uc *UseCase) Logout() {
	uc.session = nil
}

// CurrentSession devuelve la sesión activa o nil.
func (uc *UseCase) CurrentSession() *Session {
	return uc.session
}

// CurrentUser devuelve el usuario de la sesión activa o nil.
func (uc *UseCase) CurrentUser() *entity.User {
	if uc.session == nil {
		return nil
	}
	return uc.session.User
}

// CreateUser crea un usuario nuevo con la contraseña digerida.
// ErrDuplicate si el username ya existe (comparación exacta).
func (uc *UseCase) CreateUser(username, password, role, fullName string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	return uc.users.Create(entity.NewUser(username, password, role, fullName))
}

// UpdateUser aplica solo los campos presentes del patch al usuario indicado.
// La contraseña, si viene, se vuelve a digerir. ErrNotFound si no existe.
func (uc *UseCase) UpdateUser(username string, patch dto.UpdateUserRequest) error {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	if patch.Password != nil {
		user.SetPassword(*patch.Password)
	}
	return uc.users.Update(user)
}

// DeactivateUser pone activo=false; nunca elimina físicamente.
func (uc *UseCase) DeactivateUser(username string) error {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.Active = false
	return uc.users.Update(user)
}

// Users devuelve todos los usuarios.
func (uc *UseCase) Users() ([]*entity.User, error) {
	return uc.users.All()
}

// HasPermission consulta la tabla fija rol→acciones para el usuario de la
// sesión. Sin sesión activa siempre es false.
func (uc *UseCase) HasPermission(action string) bool {
	if uc.session == nil {
		return false
	}
	return uc.session.User.HasPermission(action)
}
