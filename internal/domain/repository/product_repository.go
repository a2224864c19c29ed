package repository

import "github.com/tu-usuario/tiendita-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las implementaciones cargan la lista completa al construirse y reescriben
// el archivo entero en cada mutación.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(barcode string) error
	All() ([]*entity.Product, error)
}
