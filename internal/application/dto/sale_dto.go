package dto

// CartItem línea del carrito al momento de cobrar: solo código y cantidad;
// nombre y precio se congelan desde el catálogo al procesar.
type CartItem struct {
	Barcode  string `json:"codigo_barras"`
	Quantity int    `json:"cantidad"`
}

// CheckoutRequest entrada para procesar una venta.
type CheckoutRequest struct {
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"metodo_pago"`
}
