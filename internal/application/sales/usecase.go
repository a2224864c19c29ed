package sales

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tiendita-pos/internal/application/dto"
	"github.com/tu-usuario/tiendita-pos/internal/domain"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/internal/domain/repository"
)

// IVARate tasa de IVA fija (16%).
var IVARate = decimal.New(16, -2)

// DefaultTopLimit cantidad por defecto del ranking de más vendidos.
const DefaultTopLimit = 10

// UseCase casos de uso de ventas: folios, registro, consultas y reportes.
type UseCase struct {
	repo repository.SaleRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(repo repository.SaleRepository) *UseCase {
	return &UseCase{repo: repo}
}

// NextFolio genera el siguiente folio del día: YYYYMMDD-NNNN, donde NNNN es
// 1 + la cantidad de folios ya persistidos con el prefijo de hoy. No es seguro
// bajo llamadores concurrentes; el sistema es de sesión única por proceso.
func (uc *UseCase) NextFolio() (string, error) {
	all, err := uc.repo.All()
	if err != nil {
		return "", err
	}
	prefix := time.Now().Format("20060102")
	n := 0
	for _, s := range all {
		if strings.HasPrefix(s.Folio, prefix) {
			n++
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, n+1), nil
}

// Record persiste la venta. El caller es responsable de haber validado stock
// y de descontarlo vía el catálogo en una llamada separada: ambas operaciones
// no son transaccionales entre sí (limitación documentada del sistema).
func (uc *UseCase) Record(sale *entity.Sale) error {
	if len(sale.Items) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(sale)
}

// FindByFolio busca una venta por folio. (nil, nil) si no existe.
func (uc *UseCase) FindByFolio(folio string) (*entity.Sale, error) {
	return uc.repo.GetByFolio(folio)
}

// MarkInvoiced marca una venta registrada como facturada con el RFC dado.
// Es la única mutación permitida sobre una venta.
func (uc *UseCase) MarkInvoiced(folio, taxID string) error {
	sale, err := uc.repo.GetByFolio(folio)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	sale.MarkInvoiced(taxID)
	return uc.repo.Update(sale)
}

// InDateRange devuelve las ventas cuya porción de fecha cae en [start, end],
// ambos inclusive. start y end son fechas YYYY-MM-DD; la comparación es
// lexicográfica, válida por el ancho fijo del formato ISO.
func (uc *UseCase) InDateRange(start, end string) ([]*entity.Sale, error) {
	all, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	var out []*entity.Sale
	for _, s := range all {
		key := s.DateKey()
		if start <= key && key <= end {
			out = append(out, s)
		}
	}
	return out, nil
}

// ByCashier devuelve todas las ventas de un cajero.
func (uc *UseCase) ByCashier(username string) ([]*entity.Sale, error) {
	all, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	var out []*entity.Sale
	for _, s := range all {
		if s.Cashier == username {
			out = append(out, s)
		}
	}
	return out, nil
}

// Today devuelve las ventas del día actual.
func (uc *UseCase) Today() ([]*entity.Sale, error) {
	today := time.Now().Format("2006-01-02")
	return uc.InDateRange(today, today)
}

// TotalAmount suma los totales de una lista de ventas.
func TotalAmount(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

// TopProducts agrega cantidad e importe por producto sobre todas las ventas y
// devuelve los `limit` más vendidos por cantidad, descendente. Los empates
// conservan el orden de primera aparición (sort estable sobre orden de
// inserción), comportamiento observable que se preserva del sistema original.
func (uc *UseCase) TopProducts(limit int) ([]dto.TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	all, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var agg []dto.TopProduct
	for _, s := range all {
		for _, item := range s.Items {
			i, ok := index[item.Barcode]
			if !ok {
				i = len(agg)
				index[item.Barcode] = i
				agg = append(agg, dto.TopProduct{
					Barcode: item.Barcode,
					Name:    item.Name,
					Total:   decimal.Zero,
				})
			}
			agg[i].Quantity += item.Quantity
			agg[i].Total = agg[i].Total.Add(item.Subtotal)
		}
	}
	sort.SliceStable(agg, func(i, j int) bool {
		return agg[i].Quantity > agg[j].Quantity
	})
	if len(agg) > limit {
		agg = agg[:limit]
	}
	return agg, nil
}

// Report genera el reporte de ventas de un período [start, end] inclusive.
// Con cero ventas el promedio es 0 (sin división entre cero).
func (uc *UseCase) Report(start, end string) (*dto.SalesReport, error) {
	sales, err := uc.InDateRange(start, end)
	if err != nil {
		return nil, err
	}
	total := TotalAmount(sales)
	average := decimal.Zero
	if len(sales) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}
	byCashier := make(map[string]decimal.Decimal)
	byMethod := make(map[string]decimal.Decimal)
	for _, s := range sales {
		byCashier[s.Cashier] = byCashier[s.Cashier].Add(s.Total)
		byMethod[s.PaymentMethod] = byMethod[s.PaymentMethod].Add(s.Total)
	}
	return &dto.SalesReport{
		Period:          fmt.Sprintf("%s a %s", start, end),
		SaleCount:       len(sales),
		TotalAmount:     total,
		AverageSale:     average,
		ByCashier:       byCashier,
		ByPaymentMethod: byMethod,
	}, nil
}
