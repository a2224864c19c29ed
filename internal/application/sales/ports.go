package sales

import "github.com/tu-usuario/tiendita-pos/internal/domain/entity"

// Catalog es lo que el cobro en caja necesita del catálogo de productos.
// Lo implementa usecase.ProductUseCase.
type Catalog interface {
	FindByBarcode(barcode string) (*entity.Product, error)
	AdjustStock(barcode string, delta int) error
}

// TicketGenerator genera la representación imprimible (PDF) de una venta.
// Implementación en internal/infrastructure/pdf.
type TicketGenerator interface {
	GenerateTicketPDF(sale *entity.Sale, storeName string) ([]byte, error)
}
