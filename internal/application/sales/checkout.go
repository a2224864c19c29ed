package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tiendita-pos/internal/application/dto"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// CheckoutUseCase orquesta el cobro en caja: valida el carrito contra el
// catálogo, congela nombre y precio por línea, calcula totales con IVA,
// registra la venta y después descuenta stock.
//
// Registrar la venta y descontar stock son llamadas separadas sin transacción
// entre archivos: un crash entre ambas deja la venta registrada con el stock
// sin descontar. Limitación conocida del sistema, no se "corrige" aquí.
type CheckoutUseCase struct {
	catalog Catalog
	sales   *UseCase
}

// NewCheckoutUseCase construye el caso de uso de cobro.
func NewCheckoutUseCase(catalog Catalog, salesUC *UseCase) *CheckoutUseCase {
	return &CheckoutUseCase{catalog: catalog, sales: salesUC}
}

// Checkout procesa la venta del cajero dado y devuelve la venta registrada.
func (uc *CheckoutUseCase) Checkout(cashier string, in dto.CheckoutRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Primera pasada: todo el carrito debe tener stock suficiente antes de
	// mutar nada.
	items := make([]entity.SaleItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad inválida para %s: %w", line.Barcode, domain.ErrInvalidInput)
		}
		product, err := uc.catalog.FindByBarcode(line.Barcode)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", line.Barcode, domain.ErrNotFound)
		}
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
		}
		lineSubtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, entity.SaleItem{
			Barcode:   product.Barcode,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	tax := subtotal.Mul(IVARate).Round(2)
	total := subtotal.Add(tax)

	folio, err := uc.sales.NextFolio()
	if err != nil {
		return nil, err
	}
	sale := entity.NewSale(folio, cashier, items, subtotal, tax, total, in.PaymentMethod)
	if err := uc.sales.Record(sale); err != nil {
		return nil, err
	}

	// Descuento de stock por línea, tras registrar la venta.
	for _, item := range items {
		if err := uc.catalog.AdjustStock(item.Barcode, -item.Quantity); err != nil {
			return nil, fmt.Errorf("descontar stock de %s: %w", item.Barcode, err)
		}
	}
	return sale, nil
}
