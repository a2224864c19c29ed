package dto

import "github.com/shopspring/decimal"

// TopProduct agregado de un producto en el ranking de más vendidos.
type TopProduct struct {
	Barcode  string          `json:"codigo_barras"`
	Name     string          `json:"nombre"`
	Quantity int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// SalesReport reporte de ventas de un período.
type SalesReport struct {
	Period          string                     `json:"periodo"`
	SaleCount       int                        `json:"total_ventas"`
	TotalAmount     decimal.Decimal            `json:"total_dinero"`
	AverageSale     decimal.Decimal            `json:"promedio_venta"`
	ByCashier       map[string]decimal.Decimal `json:"ventas_por_cajero"`
	ByPaymentMethod map[string]decimal.Decimal `json:"ventas_por_metodo"`
}
