// recalibrar reajusta precios del catálogo a rangos coherentes (MXN) por
// categoría. No toca nombres, categorías ni códigos; garantiza precio > 0 y
// precio_compra <= precio. Reescribe productos.json en el lugar.
//
// Uso: go run ./cmd/recalibrar [ruta/productos.json]
// Knob por entorno: TIENDITA_MARGIN (margen promedio, default 0.30).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tu-usuario/tiendita-pos/internal/catalog"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

func main() {
	path := filepath.Join("data", "productos.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", path, err)
		os.Exit(1)
	}
	var products []*entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		fmt.Fprintf(os.Stderr, "productos.json inválido: %v\n", err)
		os.Exit(1)
	}

	margin := 0.30
	if s := os.Getenv("TIENDITA_MARGIN"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			margin = f
		}
	}

	updated := catalog.Recalibrate(products, margin)

	out, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar catálogo: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("OK: recalibrados %d productos (margin=%.2f)\n", updated, margin)
}
