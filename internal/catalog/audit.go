package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// Audit revisa los archivos de datos contra errores comunes de edición
// manual: roles faltantes en usuarios y productos duplicados por
// (nombre, unidad). Devuelve los hallazgos; vacío si todo está bien.
func Audit(users []*entity.User, products []*entity.Product) []string {
	var findings []string

	present := make(map[string]bool)
	for _, u := range users {
		present[u.Role] = true
	}
	for _, role := range []string{entity.RoleOwner, entity.RoleAdmin, entity.RoleCajero} {
		if !present[role] {
			findings = append(findings, "falta al menos un usuario con rol "+role)
		}
	}

	counts := make(map[string]int)
	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Name)) + "|" + strings.ToLower(strings.TrimSpace(p.Unit))
		counts[key]++
	}
	var dupes []string
	for key, n := range counts {
		if n > 1 {
			dupes = append(dupes, fmt.Sprintf("producto duplicado por nombre+unidad: %s (x%d)", key, n))
		}
	}
	sort.Strings(dupes)
	return append(findings, dupes...)
}
