package catalog

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
)

// priceRange rango de precio al público (MXN) por categoría.
type priceRange struct {
	Lo float64
	Hi float64
}

var rangesByCategory = map[string]priceRange{
	"Refrescos": {16.0, 35.0},
	"Agua":      {12.0, 30.0},
	"Jugos":     {18.0, 45.0},
	"Botanas":   {15.0, 45.0},
	"Dulces":    {6.0, 30.0},
	"Lácteos":   {18.0, 90.0},
	"Abarrotes": {10.0, 120.0},
	"Higiene":   {12.0, 140.0},
	"Limpieza":  {12.0, 170.0},
}

var defaultRange = priceRange{10.0, 120.0}

var (
	re2L    = regexp.MustCompile(`\b2l\b|\b2 l\b`)
	re1_5L  = regexp.MustCompile(`\b1\.5l\b|\b1\.5 l\b`)
	re1L    = regexp.MustCompile(`\b1l\b|\b1 l\b`)
	re600ml = regexp.MustCompile(`\b600ml\b|\b600 ml\b`)
	reLata  = regexp.MustCompile(`\b355ml\b|lata`)
	reGde   = regexp.MustCompile(`1kg|1 kg|\b850ml\b|\b850 ml\b`)
)

// keywordFactor ajuste suave por tamaño/presentación inferido del nombre.
func keywordFactor(name string) float64 {
	n := strings.ToLower(name)
	switch {
	case re2L.MatchString(n):
		return 1.55
	case re1_5L.MatchString(n):
		return 1.35
	case re1L.MatchString(n):
		return 1.20
	case re600ml.MatchString(n):
		return 1.00
	case reLata.MatchString(n):
		return 0.95
	case strings.Contains(n, "familiar"):
		return 1.25
	case strings.Contains(n, "mini"):
		return 0.90
	case strings.Contains(n, "promoción") || strings.Contains(n, "promocion"):
		return 1.05
	case reGde.MatchString(n):
		return 1.15
	}
	return 1.00
}

// stableHash01 deriva un valor reproducible en [0, 1) del nombre, con FNV-1a,
// para que la recalibración sea estable entre corridas.
func stableHash01(s string) float64 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return float64(h.Sum32()%10000) / 10000.0
}

// Recalibrate reajusta precio y precio_compra de cada producto a rangos
// coherentes por categoría con el margen dado (se acota a 0.05..0.60).
// No toca nombres, categorías ni códigos. Garantiza precio > 0 y
// precio_compra <= precio. Devuelve cuántos productos se actualizaron.
func Recalibrate(products []*entity.Product, margin float64) int {
	margin = clamp(margin, 0.05, 0.60)

	updated := 0
	for _, p := range products {
		r, ok := rangesByCategory[p.Category]
		if !ok {
			r = defaultRange
		}

		base := r.Lo + (r.Hi-r.Lo)*stableHash01(p.Name)
		price := clamp(base*keywordFactor(p.Name), r.Lo, r.Hi)
		purchase := price / (1.0 + margin)

		priceDec := decimal.NewFromFloat(price).Round(2)
		purchaseDec := decimal.NewFromFloat(purchase).Round(2)

		if !priceDec.IsPositive() {
			priceDec = decimal.NewFromFloat(r.Lo).Round(2)
		}
		if purchaseDec.IsNegative() {
			purchaseDec = decimal.Zero
		}
		if purchaseDec.GreaterThan(priceDec) {
			purchaseDec = priceDec.Mul(decimal.New(9, -1)).Round(2)
		}

		p.Price = priceDec
		p.PurchasePrice = purchaseDec
		updated++
	}
	return updated
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
