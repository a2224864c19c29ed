package sales_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tiendita-pos/internal/application/sales"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/internal/infrastructure/jsonstore"
)

func newSalesUC(t *testing.T) *sales.UseCase {
	t.Helper()
	repo := jsonstore.NewSaleRepository(filepath.Join(t.TempDir(), "ventas.json"), zerolog.Nop())
	return sales.NewUseCase(repo)
}

func venta(folio, cashier string, items []entity.SaleItem, total string, method string) *entity.Sale {
	tot := decimal.RequireFromString(total)
	sub := tot.Div(decimal.RequireFromString("1.16")).Round(2)
	return entity.NewSale(folio, cashier, items, sub, tot.Sub(sub), tot, method)
}

func linea(barcode, name string, qty int, unitPrice string) entity.SaleItem {
	price := decimal.RequireFromString(unitPrice)
	return entity.SaleItem{
		Barcode:   barcode,
		Name:      name,
		Quantity:  qty,
		UnitPrice: price,
		Subtotal:  price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// TestNextFolio_SecuenciaDelDia: los folios del día son YYYYMMDD-0001,
// -0002, ... en el orden de registro.
func TestNextFolio_SecuenciaDelDia(t *testing.T) {
	uc := newSalesUC(t)
	prefix := time.Now().Format("20060102")

	for i := 1; i <= 3; i++ {
		folio, err := uc.NextFolio()
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s-%04d", prefix, i), folio)
		require.NoError(t, uc.Record(venta(folio, "cajero", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCash)))
	}
}

func TestRecord_SinItemsRechazado(t *testing.T) {
	uc := newSalesUC(t)
	err := uc.Record(venta("20250101-0001", "cajero", nil, "0", entity.PaymentCash))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestRecord_AgregaAlFinal: registrar solo agrega y persiste; la unicidad del
// folio la garantiza el generador, no el registro.
func TestRecord_AgregaAlFinal(t *testing.T) {
	uc := newSalesUC(t)
	s := venta("20250101-0001", "cajero", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCash)
	require.NoError(t, uc.Record(s))
	require.NoError(t, uc.Record(s))

	got, err := uc.ByCashier("cajero")
	require.NoError(t, err)
	assert.Len(t, got, 2, "ambos registros deben quedar persistidos, en orden de registro")
}

func TestMarkInvoiced(t *testing.T) {
	uc := newSalesUC(t)
	require.NoError(t, uc.Record(venta("20250101-0001", "cajero", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCash)))

	require.NoError(t, uc.MarkInvoiced("20250101-0001", "XAXX010101000"))

	s, err := uc.FindByFolio("20250101-0001")
	require.NoError(t, err)
	assert.True(t, s.Invoiced)
	require.NotNil(t, s.CustomerTaxID)
	assert.Equal(t, "XAXX010101000", *s.CustomerTaxID)

	assert.ErrorIs(t, uc.MarkInvoiced("20250101-9999", "XAXX010101000"), domain.ErrNotFound)
}

// TestInDateRange_Inclusivo: ambos extremos del rango cuentan.
func TestInDateRange_Inclusivo(t *testing.T) {
	uc := newSalesUC(t)
	fechas := []string{"2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13"}
	for i, f := range fechas {
		s := venta(fmt.Sprintf("20250101-%04d", i+1), "cajero", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCash)
		s.Date, _ = time.Parse("2006-01-02", f)
		require.NoError(t, uc.Record(s))
	}

	got, err := uc.InDateRange("2025-01-11", "2025-01-12")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01-11", got[0].DateKey())
	assert.Equal(t, "2025-01-12", got[1].DateKey())
}

func TestByCashier(t *testing.T) {
	uc := newSalesUC(t)
	require.NoError(t, uc.Record(venta("20250101-0001", "ana", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCash)))
	require.NoError(t, uc.Record(venta("20250101-0002", "beto", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "20.88", entity.PaymentCard)))
	require.NoError(t, uc.Record(venta("20250101-0003", "ana", []entity.SaleItem{linea("1", "Coca", 2, "18.00")}, "41.76", entity.PaymentCash)))

	got, err := uc.ByCashier("ana")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// TestTopProducts_OrdenYEmpates: ordena por cantidad descendente; los empates
// conservan el orden de primera aparición entre las ventas.
func TestTopProducts_OrdenYEmpates(t *testing.T) {
	uc := newSalesUC(t)
	require.NoError(t, uc.Record(venta("20250101-0001", "ana", []entity.SaleItem{
		linea("A", "Agua", 2, "10.00"),
		linea("B", "Botana", 5, "17.00"),
	}, "121.80", entity.PaymentCash)))
	require.NoError(t, uc.Record(venta("20250101-0002", "ana", []entity.SaleItem{
		linea("C", "Chicle", 2, "5.00"),
		linea("B", "Botana", 1, "17.00"),
	}, "31.32", entity.PaymentCash)))

	top, err := uc.TopProducts(0)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "B", top[0].Barcode)
	assert.Equal(t, 6, top[0].Quantity)
	assert.True(t, top[0].Total.Equal(decimal.RequireFromString("102.00")))

	// A y C empatan con 2; A apareció primero.
	assert.Equal(t, "A", top[1].Barcode)
	assert.Equal(t, "C", top[2].Barcode)
}

func TestTopProducts_Limite(t *testing.T) {
	uc := newSalesUC(t)
	require.NoError(t, uc.Record(venta("20250101-0001", "ana", []entity.SaleItem{
		linea("A", "Agua", 3, "10.00"),
		linea("B", "Botana", 2, "17.00"),
		linea("C", "Chicle", 1, "5.00"),
	}, "80.04", entity.PaymentCash)))

	top, err := uc.TopProducts(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Barcode)
	assert.Equal(t, "B", top[1].Barcode)
}

func TestReport_ConVentas(t *testing.T) {
	uc := newSalesUC(t)
	s1 := venta("20250110-0001", "ana", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "100.00", entity.PaymentCash)
	s1.Date, _ = time.Parse("2006-01-02", "2025-01-10")
	s2 := venta("20250110-0002", "beto", []entity.SaleItem{linea("1", "Coca", 1, "18.00")}, "50.00", entity.PaymentCard)
	s2.Date, _ = time.Parse("2006-01-02", "2025-01-10")
	require.NoError(t, uc.Record(s1))
	require.NoError(t, uc.Record(s2))

	report, err := uc.Report("2025-01-10", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2, report.SaleCount)
	assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, report.AverageSale.Equal(decimal.RequireFromString("75.00")))
	assert.True(t, report.ByCashier["ana"].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, report.ByCashier["beto"].Equal(decimal.RequireFromString("50.00")))
	assert.True(t, report.ByPaymentMethod[entity.PaymentCash].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, report.ByPaymentMethod[entity.PaymentCard].Equal(decimal.RequireFromString("50.00")))
}

// TestReport_SinVentas: con cero ventas el promedio es 0, sin división
// entre cero.
func TestReport_SinVentas(t *testing.T) {
	uc := newSalesUC(t)
	report, err := uc.Report("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, 0, report.SaleCount)
	assert.True(t, report.TotalAmount.IsZero())
	assert.True(t, report.AverageSale.IsZero())
}
