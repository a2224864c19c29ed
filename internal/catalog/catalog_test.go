package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tiendita-pos/internal/catalog"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/pkg/ean13"
)

func TestGenerate_CatalogoLimpio(t *testing.T) {
	products, err := catalog.Generate(2, 50)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	errs := catalog.Validate(products)
	assert.Empty(t, errs, "el catálogo generado debe pasar su propia validación")
}

// TestGenerate_CodigosInternosValidos: todos los códigos son EAN-13 válidos
// con el prefijo interno de la tienda, sin repetir.
func TestGenerate_CodigosInternosValidos(t *testing.T) {
	products, err := catalog.Generate(1, 50)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, p := range products {
		assert.Len(t, p.Barcode, 13)
		assert.True(t, ean13.Valid(p.Barcode), "código inválido: %s", p.Barcode)

		_, dup := seen[p.Barcode]
		assert.False(t, dup, "código repetido: %s", p.Barcode)
		seen[p.Barcode] = struct{}{}
	}
}

func TestGenerate_MultiplicadorAumentaVariaciones(t *testing.T) {
	small, err := catalog.Generate(1, 50)
	require.NoError(t, err)
	big, err := catalog.Generate(3, 50)
	require.NoError(t, err)
	assert.Greater(t, len(big), len(small))
}

func TestGenerate_Determinista(t *testing.T) {
	a, err := catalog.Generate(2, 40)
	require.NoError(t, err)
	b, err := catalog.Generate(2, 40)
	require.NoError(t, err)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Barcode, b[i].Barcode)
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.True(t, a[i].Price.Equal(b[i].Price))
	}
}

// TestRecalibrate_Invariantes: tras recalibrar, precio > 0 y
// precio_compra <= precio en todos los productos; nombres y códigos intactos.
func TestRecalibrate_Invariantes(t *testing.T) {
	products, err := catalog.Generate(2, 50)
	require.NoError(t, err)

	names := make([]string, len(products))
	codes := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
		codes[i] = p.Barcode
	}

	updated := catalog.Recalibrate(products, 0.30)
	assert.Equal(t, len(products), updated)

	for i, p := range products {
		assert.True(t, p.Price.IsPositive(), "precio no positivo en %s", p.Name)
		assert.True(t, p.PurchasePrice.LessThanOrEqual(p.Price), "compra > venta en %s", p.Name)
		assert.Equal(t, names[i], p.Name)
		assert.Equal(t, codes[i], p.Barcode)
	}
}

// TestRecalibrate_EstableEntreCorridas: dos recalibraciones con el mismo
// margen producen exactamente los mismos precios.
func TestRecalibrate_EstableEntreCorridas(t *testing.T) {
	a, err := catalog.Generate(1, 50)
	require.NoError(t, err)
	b, err := catalog.Generate(1, 50)
	require.NoError(t, err)

	catalog.Recalibrate(a, 0.30)
	catalog.Recalibrate(b, 0.30)
	require.Len(t, b, len(a))
	for i := range a {
		assert.True(t, a[i].Price.Equal(b[i].Price), "precio inestable en %s", a[i].Name)
		assert.True(t, a[i].PurchasePrice.Equal(b[i].PurchasePrice))
	}
}

func TestRecalibrate_MargenAcotado(t *testing.T) {
	products, err := catalog.Generate(1, 50)
	require.NoError(t, err)

	// Un margen absurdo se acota; los invariantes se mantienen igual.
	catalog.Recalibrate(products, 5.0)
	for _, p := range products {
		assert.True(t, p.Price.IsPositive())
		assert.True(t, p.PurchasePrice.LessThanOrEqual(p.Price))
	}
}

func TestValidate_DetectaProblemas(t *testing.T) {
	bad := []*entity.Product{
		{Barcode: "", Name: "Sin código", Price: decimal.RequireFromString("5.00"), Unit: "pz"},
		{Barcode: "1", Name: "Precio cero", Price: decimal.Zero, Unit: "pz"},
		{Barcode: "2", Name: "Repetido", Price: decimal.RequireFromString("5.00"), Unit: "pz"},
		{Barcode: "2", Name: "Repetido", Price: decimal.RequireFromString("5.00"), Unit: "pz"},
		{Barcode: "3", Name: "Stock negativo", Price: decimal.RequireFromString("5.00"), Stock: -1, Unit: "pz"},
	}
	errs := catalog.Validate(bad)
	assert.NotEmpty(t, errs)
	assert.GreaterOrEqual(t, len(errs), 5, "falta código, precio cero, código duplicado, nombre duplicado y stock negativo")
}

func TestAudit_RolesYDuplicados(t *testing.T) {
	users := []*entity.User{
		entity.NewUser("owner", "x", entity.RoleOwner, ""),
		entity.NewUser("cajero", "x", entity.RoleCajero, ""),
	}
	products := []*entity.Product{
		{Barcode: "1", Name: "Arroz 1kg", Price: decimal.RequireFromString("28.00"), Unit: "pz"},
		{Barcode: "2", Name: "arroz 1kg", Price: decimal.RequireFromString("29.00"), Unit: "pz"},
	}

	findings := catalog.Audit(users, products)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0], entity.RoleAdmin)
	assert.Contains(t, findings[1], "arroz 1kg")
}

func TestAudit_SinHallazgos(t *testing.T) {
	users := []*entity.User{
		entity.NewUser("owner", "x", entity.RoleOwner, ""),
		entity.NewUser("admin", "x", entity.RoleAdmin, ""),
		entity.NewUser("cajero", "x", entity.RoleCajero, ""),
	}
	products := []*entity.Product{
		{Barcode: "1", Name: "Arroz 1kg", Price: decimal.RequireFromString("28.00"), Unit: "pz"},
	}
	assert.Empty(t, catalog.Audit(users, products))
}
