package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "Efectivo"
	PaymentCard     = "Tarjeta"
	PaymentTransfer = "Transferencia"
)

// SaleItem es una línea de venta: congela nombre y precio del producto al
// momento de vender, aunque el catálogo cambie después.
type SaleItem struct {
	Barcode   string          `json:"codigo_barras"`
	Name      string          `json:"nombre"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Sale representa una venta registrada. Inmutable una vez persistida, con la
// única excepción del marcado de facturación (Invoiced + CustomerTaxID).
type Sale struct {
	Folio         string          `json:"folio"`
	Cashier       string          `json:"cajero"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"metodo_pago"`
	Date          time.Time       `json:"fecha"`
	CustomerTaxID *string         `json:"cliente_rfc"`
	Invoiced      bool            `json:"facturada"`
}

// NewSale construye una venta con fecha actual. metodo_pago vacío cae a Efectivo.
func NewSale(folio, cashier string, items []SaleItem, subtotal, tax, total decimal.Decimal, paymentMethod string) *Sale {
	if paymentMethod == "" {
		paymentMethod = PaymentCash
	}
	return &Sale{
		Folio:         folio,
		Cashier:       cashier,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: paymentMethod,
		Date:          time.Now(),
	}
}

// MarkInvoiced marca la venta como facturada con el RFC del cliente.
func (s *Sale) MarkInvoiced(taxID string) {
	s.Invoiced = true
	s.CustomerTaxID = &taxID
}

// DateKey devuelve la porción de fecha (YYYY-MM-DD) para comparaciones de rango.
func (s *Sale) DateKey() string {
	return s.Date.Format("2006-01-02")
}
