package sales_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tiendita-pos/internal/application/dto"
	"github.com/tu-usuario/tiendita-pos/internal/application/sales"
	"github.com/tu-usuario/tiendita-pos/internal/application/usecase"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/internal/infrastructure/jsonstore"
)

func newCheckout(t *testing.T) (*sales.CheckoutUseCase, *usecase.ProductUseCase, *sales.UseCase) {
	t.Helper()
	dir := t.TempDir()
	products := usecase.NewProductUseCase(jsonstore.NewProductRepository(filepath.Join(dir, "productos.json"), zerolog.Nop()))
	salesUC := sales.NewUseCase(jsonstore.NewSaleRepository(filepath.Join(dir, "ventas.json"), zerolog.Nop()))
	return sales.NewCheckoutUseCase(products, salesUC), products, salesUC
}

func alta(t *testing.T, products *usecase.ProductUseCase, barcode, name, price string, stock int) {
	t.Helper()
	p := entity.NewProduct(barcode, name, decimal.RequireFromString(price), stock, "Abarrotes", "Proveedor Genérico", decimal.RequireFromString("1.00"), "pz")
	require.NoError(t, products.Add(p))
}

// TestCheckout_TotalesConIVA: 2 x 15.00 + 1 x 22.00 = 52.00 de subtotal,
// IVA 8.32, total 60.32.
func TestCheckout_TotalesConIVA(t *testing.T) {
	checkout, products, _ := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)
	alta(t, products, "B", "Atún en agua", "22.00", 10)

	sale, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{
			{Barcode: "A", Quantity: 2},
			{Barcode: "B", Quantity: 1},
		},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.True(t, sale.Subtotal.Equal(decimal.RequireFromString("52.00")), "subtotal: %s", sale.Subtotal)
	assert.True(t, sale.Tax.Equal(decimal.RequireFromString("8.32")), "iva: %s", sale.Tax)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("60.32")), "total: %s", sale.Total)
	assert.Equal(t, entity.PaymentCard, sale.PaymentMethod)
	assert.Equal(t, "cajero", sale.Cashier)
}

// TestCheckout_DescuentaStock: el stock de cada línea baja exactamente la
// cantidad vendida.
func TestCheckout_DescuentaStock(t *testing.T) {
	checkout, products, salesUC := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)

	sale, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{{Barcode: "A", Quantity: 3}},
	})
	require.NoError(t, err)

	p, err := products.FindByBarcode("A")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	// La venta quedó persistida y recuperable por folio.
	stored, err := salesUC.FindByFolio(sale.Folio)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Items, 1)
}

// TestCheckout_CongelaNombreYPrecio: cambiar el catálogo después de la venta
// no altera las líneas ya registradas.
func TestCheckout_CongelaNombreYPrecio(t *testing.T) {
	checkout, products, salesUC := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)

	sale, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{{Barcode: "A", Quantity: 1}},
	})
	require.NoError(t, err)

	p, err := products.FindByBarcode("A")
	require.NoError(t, err)
	p.Name = "Galletas Marías XL"
	p.Price = decimal.RequireFromString("99.00")
	require.NoError(t, products.Update(p))

	stored, err := salesUC.FindByFolio(sale.Folio)
	require.NoError(t, err)
	assert.Equal(t, "Galletas Marías", stored.Items[0].Name)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("15.00")))
}

func TestCheckout_CarritoVacio(t *testing.T) {
	checkout, _, _ := newCheckout(t)
	_, err := checkout.Checkout("cajero", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_CantidadInvalida(t *testing.T) {
	checkout, products, _ := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)

	_, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{{Barcode: "A", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_ProductoDesconocido(t *testing.T) {
	checkout, _, _ := newCheckout(t)
	_, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{{Barcode: "NOEXISTE", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestCheckout_StockInsuficiente: si cualquier línea no alcanza, no se
// registra nada ni se descuenta ninguna otra línea.
func TestCheckout_StockInsuficiente(t *testing.T) {
	checkout, products, salesUC := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)
	alta(t, products, "B", "Atún en agua", "22.00", 2)

	_, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{
			{Barcode: "A", Quantity: 1},
			{Barcode: "B", Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se mutó: ni stock ni ventas.
	a, err := products.FindByBarcode("A")
	require.NoError(t, err)
	assert.Equal(t, 10, a.Stock)

	today, err := salesUC.Today()
	require.NoError(t, err)
	assert.Empty(t, today)
}

func TestCheckout_MetodoPorDefectoEfectivo(t *testing.T) {
	checkout, products, _ := newCheckout(t)
	alta(t, products, "A", "Galletas Marías", "15.00", 10)

	sale, err := checkout.Checkout("cajero", dto.CheckoutRequest{
		Items: []dto.CartItem{{Barcode: "A", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)
}
