package usecase

import (
	"sort"
	"strings"

	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de stock bajo cuando no se indica otro.
const DefaultLowStockThreshold = 10

// ProductUseCase casos de uso del catálogo de productos: búsquedas, altas,
// bajas y movimientos de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// FindByBarcode busca por código exacto. (nil, nil) si no existe.
func (uc *ProductUseCase) FindByBarcode(barcode string) (*entity.Product, error) {
	return uc.repo.GetByBarcode(barcode)
}

// FindByName busca productos cuyo nombre contenga el término (sin distinguir
// mayúsculas).
func (uc *ProductUseCase) FindByName(term string) ([]*entity.Product, error) {
	products, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var out []*entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindByCategory busca productos por categoría exacta.
func (uc *ProductUseCase) FindByCategory(category string) ([]*entity.Product, error) {
	products, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Add agrega un producto nuevo. ErrDuplicate si el código ya existe,
// ErrInvalidInput si el precio no es positivo o el precio de compra es negativo.
func (uc *ProductUseCase) Add(product *entity.Product) error {
	if product.Barcode == "" || product.Name == "" {
		return domain.ErrInvalidInput
	}
	if !product.Price.IsPositive() || product.PurchasePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(product)
}

// Update reemplaza el registro con el mismo código. ErrNotFound si no existe.
func (uc *ProductUseCase) Update(product *entity.Product) error {
	if !product.Price.IsPositive() || product.PurchasePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(product)
}

// Delete elimina un producto por código. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(barcode string) error {
	return uc.repo.Delete(barcode)
}

// AdjustStock suma delta al stock del producto y sella fecha_actualizacion.
// No impone stock resultante >= 0: la validación de suficiencia es del caller
// (el cobro en caja valida antes de descontar).
func (uc *ProductUseCase) AdjustStock(barcode string, delta int) error {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	product.AdjustStock(delta)
	return uc.repo.Update(product)
}

// LowStock devuelve los productos con stock <= umbral. Un umbral no positivo
// cae al valor por defecto (10).
func (uc *ProductUseCase) LowStock(threshold int) ([]*entity.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	products, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories devuelve las categorías distintas en orden lexicográfico.
func (uc *ProductUseCase) Categories() ([]string, error) {
	products, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

// All devuelve el catálogo completo.
func (uc *ProductUseCase) All() ([]*entity.Product, error) {
	return uc.repo.All()
}
