package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Roles válidos para User. Los valores son los que se persisten en usuarios.json.
const (
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
	RoleCajero = "CAJERO"
)

// Acciones del sistema sujetas a permisos.
const (
	ActionVentas     = "ventas"
	ActionProductos  = "productos"
	ActionReportes   = "reportes"
	ActionInventario = "inventario"
	// Gestión de usuarios: solo la cubre el comodín de OWNER.
	ActionUsuarios = "usuarios"
)

// rolePermissions mapea rol -> acciones permitidas. Se construye una sola vez
// al cargar el proceso; "*" es comodín (todas las acciones).
var rolePermissions = map[string][]string{
	RoleOwner:  {"*"},
	RoleAdmin:  {ActionVentas, ActionProductos, ActionReportes, ActionInventario},
	RoleCajero: {ActionVentas},
}

// User representa un usuario del sistema. La desactivación (Active=false) es
// el mecanismo de baja; nunca se elimina físicamente.
type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"password_hash"`
	Role         string     `json:"rol"`
	FullName     string     `json:"nombre_completo"`
	Active       bool       `json:"activo"`
	CreatedAt    time.Time  `json:"fecha_creacion"`
	LastLogin    *time.Time `json:"ultimo_acceso"`
}

// NewUser construye un usuario activo con la contraseña ya digerida.
func NewUser(username, password, role, fullName string) *User {
	if fullName == "" {
		fullName = username
	}
	return &User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
		FullName:     fullName,
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

// HashPassword produce el digest SHA-256 en hex de la contraseña.
// Sin sal, por compatibilidad con los usuarios.json existentes.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compara la contraseña contra el hash almacenado.
func (u *User) VerifyPassword(password string) bool {
	return u.PasswordHash == HashPassword(password)
}

// SetPassword reemplaza el hash por el de la nueva contraseña.
func (u *User) SetPassword(password string) {
	u.PasswordHash = HashPassword(password)
}

// TouchLastLogin sella el último acceso con la hora actual.
func (u *User) TouchLastLogin() {
	now := time.Now()
	u.LastLogin = &now
}

// HasPermission indica si el rol del usuario permite la acción dada.
func (u *User) HasPermission(action string) bool {
	for _, a := range rolePermissions[u.Role] {
		if a == "*" || a == action {
			return true
		}
	}
	return false
}

// ValidRole indica si role es uno de los roles reconocidos.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
