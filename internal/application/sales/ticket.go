package sales

import (
	"fmt"

	"github.com/tu-usuario/tiendita-pos/internal/domain"
)

// TicketUseCase exporta el ticket imprimible de una venta registrada.
type TicketUseCase struct {
	sales     *UseCase
	generator TicketGenerator
	storeName string
}

// NewTicketUseCase construye el caso de uso de tickets.
func NewTicketUseCase(salesUC *UseCase, generator TicketGenerator, storeName string) *TicketUseCase {
	return &TicketUseCase{sales: salesUC, generator: generator, storeName: storeName}
}

// Export genera el PDF del ticket de la venta con el folio dado.
func (uc *TicketUseCase) Export(folio string) ([]byte, error) {
	sale, err := uc.sales.FindByFolio(folio)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", folio, domain.ErrNotFound)
	}
	return uc.generator.GenerateTicketPDF(sale, uc.storeName)
}
