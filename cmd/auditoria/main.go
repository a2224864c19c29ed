// auditoria revisa los archivos de datos contra errores comunes de edición
// manual: JSON inválido, roles faltantes y productos duplicados por
// nombre+unidad. Solo lee; no modifica ningún archivo. Sale con código 1 si
// hay hallazgos.
//
// Uso: go run ./cmd/auditoria [directorio-de-datos]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/tiendita-pos/internal/catalog"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	var users []*entity.User
	if err := readJSON(filepath.Join(dataDir, "usuarios.json"), &users); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: usuarios.json inválido: %v\n", err)
		os.Exit(1)
	}

	var products []*entity.Product
	if err := readJSON(filepath.Join(dataDir, "productos.json"), &products); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: productos.json inválido: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("usuarios_total:", len(users))
	fmt.Println("productos_total:", len(products))

	findings := catalog.Audit(users, products)
	if len(findings) > 0 {
		for _, f := range findings {
			fmt.Println("-", f)
		}
		os.Exit(1)
	}
	fmt.Println("OK auditoría")
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
