package jsonstore

import (
	"github.com/rs/zerolog"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre productos.json.
type ProductRepository struct {
	col *collection[entity.Product]
}

// NewProductRepository abre (o crea vacío en memoria) el archivo de productos.
func NewProductRepository(path string, log zerolog.Logger) *ProductRepository {
	return &ProductRepository{col: openCollection[entity.Product](path, log)}
}

// Create agrega el producto. Falla con ErrDuplicate si el código ya existe.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for _, p := range r.col.items {
		if p.Barcode == product.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.col.items = append(r.col.items, &cp)
	r.col.save()
	return nil
}

// GetByBarcode busca por código exacto, primera coincidencia. (nil, nil) si no hay.
func (r *ProductRepository) GetByBarcode(barcode string) (*entity.Product, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for _, p := range r.col.items {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo código. ErrNotFound si no existe.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for i, p := range r.col.items {
		if p.Barcode == product.Barcode {
			cp := *product
			r.col.items[i] = &cp
			r.col.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la primera coincidencia por código. ErrNotFound si no existe.
func (r *ProductRepository) Delete(barcode string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	for i, p := range r.col.items {
		if p.Barcode == barcode {
			r.col.items = append(r.col.items[:i], r.col.items[i+1:]...)
			r.col.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// All devuelve copias de todos los productos en orden de archivo.
func (r *ProductRepository) All() ([]*entity.Product, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.col.items))
	for _, p := range r.col.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
