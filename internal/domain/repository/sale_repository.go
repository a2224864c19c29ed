package repository

import "github.com/tu-usuario/tiendita-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son inmutables una vez creadas; Update existe solo para el
// marcado posterior de facturación.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByFolio(folio string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	All() ([]*entity.Sale, error)
}
