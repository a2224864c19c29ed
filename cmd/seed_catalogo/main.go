// seed_catalogo genera un catálogo surtido y lo escribe en data/productos.json.
// Valida el catálogo antes de escribir; si hay errores no toca el archivo.
//
// Uso: go run ./cmd/seed_catalogo [ruta/productos.json]
// Knobs por entorno: TIENDITA_SIZE_MULTIPLIER (default 50),
// TIENDITA_BASE_STOCK (default 60).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tu-usuario/tiendita-pos/internal/catalog"
)

func main() {
	outPath := filepath.Join("data", "productos.json")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	sizeMultiplier := envInt("TIENDITA_SIZE_MULTIPLIER", 50)
	baseStock := envInt("TIENDITA_BASE_STOCK", 60)

	products, err := catalog.Generate(sizeMultiplier, baseStock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar catálogo: %v\n", err)
		os.Exit(1)
	}

	if errs := catalog.Validate(products); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "VALIDACIÓN FALLÓ. No se escribió productos.json")
		for i, e := range errs {
			if i == 50 {
				fmt.Fprintf(os.Stderr, "... y %d errores más\n", len(errs)-50)
				break
			}
			fmt.Fprintln(os.Stderr, "-", e)
		}
		os.Exit(1)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar catálogo: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("OK: escrito %s con %d productos\n", outPath, len(products))
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}
