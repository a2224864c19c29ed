package jsonstore

import (
	"github.com/rs/zerolog"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// SaleRepository implementa repository.SaleRepository sobre ventas.json.
type SaleRepository struct {
	col *collection[entity.Sale]
}

// NewSaleRepository abre (o crea vacío en memoria) el archivo de ventas.
func NewSaleRepository(path string, log zerolog.Logger) *SaleRepository {
	return &SaleRepository{col: openCollection[entity.Sale](path, log)}
}

// Create agrega la venta al final y persiste. No valida folio duplicado: la
// secuencia la garantiza el generador de folios del servicio de ventas.
func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	cp := *sale
	r.col.items = append(r.col.items, &cp)
	r.col.save()
	return nil
}

// GetByFolio busca una venta por folio. (nil, nil) si no existe.
func (r *SaleRepository) GetByFolio(folio string) (*entity.Sale, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for _, s := range r.col.items {
		if s.Folio == folio {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la venta con el mismo folio. Solo lo usa el marcado de
// facturación; las ventas son inmutables en todo lo demás.
func (r *SaleRepository) Update(sale *entity.Sale) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for i, s := range r.col.items {
		if s.Folio == sale.Folio {
			cp := *sale
			r.col.items[i] = &cp
			r.col.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// All devuelve copias de todas las ventas en orden de registro.
func (r *SaleRepository) All() ([]*entity.Sale, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.col.items))
	for _, s := range r.col.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
