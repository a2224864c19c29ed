// reset_demo restaura las credenciales demo (owner/admin/cajero) a valores
// conocidos. Útil tras ediciones manuales de usuarios.json que rompen el
// login. Solo actualiza password_hash de usuarios existentes por username.
//
// Credenciales resultantes:
//
//	owner / owner123
//	admin / admin123
//	cajero / cajero123
//
// Uso: go run ./cmd/reset_demo [ruta/usuarios.json]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

func main() {
	path := filepath.Join("data", "usuarios.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", path, err)
		os.Exit(1)
	}
	var users []*entity.User
	if err := json.Unmarshal(data, &users); err != nil {
		fmt.Fprintf(os.Stderr, "usuarios.json inválido: %v\n", err)
		os.Exit(1)
	}

	desired := map[string]string{
		"owner":  "owner123",
		"admin":  "admin123",
		"cajero": "cajero123",
	}

	touched := 0
	for _, u := range users {
		if password, ok := desired[u.Username]; ok {
			u.SetPassword(password)
			touched++
		}
	}
	if touched == 0 {
		fmt.Fprintln(os.Stderr, "No se actualizó ningún usuario (usernames no encontrados)")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar usuarios: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Println("OK: credenciales demo reseteadas:")
	for _, cred := range []string{"owner / owner123", "admin / admin123", "cajero / cajero123"} {
		fmt.Println("-", cred)
	}
}
