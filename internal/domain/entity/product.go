package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos se persisten como números JSON planos, no como strings, para
	// que los archivos de datos sigan siendo editables a mano y compatibles
	// con los existentes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del catálogo de la tienda.
// El código de barras es la llave única e inmutable después de crear.
// La entidad no impone stock >= 0: las operaciones de venta validan
// suficiencia antes de descontar.
type Product struct {
	Barcode       string          `json:"codigo_barras"`
	Name          string          `json:"nombre"`
	Price         decimal.Decimal `json:"precio"`
	Stock         int             `json:"stock"`
	Category      string          `json:"categoria"`
	Supplier      string          `json:"proveedor"`
	PurchasePrice decimal.Decimal `json:"precio_compra"`
	Unit          string          `json:"unidad"`
	CreatedAt     time.Time       `json:"fecha_creacion"`
	UpdatedAt     time.Time       `json:"fecha_actualizacion"`
}

// NewProduct construye un producto con timestamps inicializados. Si unit viene
// vacío se usa "pz" (pieza), la unidad por defecto de la tienda.
func NewProduct(barcode, name string, price decimal.Decimal, stock int, category, supplier string, purchasePrice decimal.Decimal, unit string) *Product {
	if unit == "" {
		unit = "pz"
	}
	now := time.Now()
	return &Product{
		Barcode:       barcode,
		Name:          name,
		Price:         price,
		Stock:         stock,
		Category:      category,
		Supplier:      supplier,
		PurchasePrice: purchasePrice,
		Unit:          unit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AdjustStock suma delta (positivo o negativo) al stock y sella fecha_actualizacion.
func (p *Product) AdjustStock(delta int) {
	p.Stock += delta
	p.UpdatedAt = time.Now()
}
