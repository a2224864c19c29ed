// Package catalog genera y mantiene el catálogo semilla de la tienda:
// generación masiva desde plantillas por categoría, validación del arreglo
// resultante y recalibración de precios. Son colaboradores batch; no forman
// parte del núcleo de sesión.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/pkg/ean13"
)

// Template plantilla de una categoría: nombres base y precios de referencia.
type Template struct {
	Category      string
	Unit          string
	BasePrice     float64
	BasePurchase  float64
	Names         []string
}

// templates por categoría. Nombres comunes de tiendita; no se intenta
// replicar UPC/EAN reales, los códigos son internos con prefijo 990.
var templates = []Template{
	{
		Category: "Refrescos", Unit: "pz", BasePrice: 15.0, BasePurchase: 10.5,
		Names: []string{
			"Cola 600ml", "Cola 2L", "Cola 355ml Lata", "Naranja 600ml",
			"Limón 600ml", "Manzana 600ml", "Toronja 600ml",
		},
	},
	{
		Category: "Agua", Unit: "pz", BasePrice: 10.0, BasePurchase: 6.5,
		Names: []string{
			"Agua Natural 600ml", "Agua Natural 1.5L", "Agua Mineral 600ml",
			"Agua Saborizada 600ml", "Agua Natural 1L",
		},
	},
	{
		Category: "Jugos", Unit: "pz", BasePrice: 22.0, BasePurchase: 16.0,
		Names: []string{
			"Jugo Naranja 1L", "Jugo Manzana 1L", "Jugo Durazno 1L",
			"Néctar Mango 1L", "Bebida Frutal 500ml",
		},
	},
	{
		Category: "Botanas", Unit: "pz", BasePrice: 18.0, BasePurchase: 12.0,
		Names: []string{
			"Papas Original 45g", "Papas Adobadas 45g", "Papas Jalapeño 45g",
			"Totopos Nacho 62g", "Churritos 50g", "Cacahuates 50g",
		},
	},
	{
		Category: "Galletas", Unit: "pz", BasePrice: 18.0, BasePurchase: 12.5,
		Names: []string{
			"Galletas Chocolate 170g", "Galletas Vainilla 170g",
			"Galletas Avena 180g", "Galletas Saladas 200g",
		},
	},
	{
		Category: "Dulces", Unit: "pz", BasePrice: 10.0, BasePurchase: 6.5,
		Names: []string{
			"Pastelito Chocolate", "Paleta Picante", "Caramelo Macizo",
			"Chicle Menta", "Chocolate Barra 50g", "Gomitas 100g",
		},
	},
	{
		Category: "Pan", Unit: "pz", BasePrice: 45.0, BasePurchase: 32.0,
		Names: []string{
			"Pan Blanco 680g", "Pan Integral 680g",
			"Tortillas Harina 10pzs", "Tortillas Maíz 1kg",
		},
	},
	{
		Category: "Lácteos", Unit: "pz", BasePrice: 28.0, BasePurchase: 20.0,
		Names: []string{
			"Leche Entera 1L", "Leche Deslactosada 1L", "Yogurt Natural 1L",
			"Crema 500ml", "Queso Panela 400g", "Mantequilla 90g",
		},
	},
	{
		Category: "Abarrotes", Unit: "pz", BasePrice: 25.0, BasePurchase: 18.0,
		Names: []string{
			"Arroz 1kg", "Frijol Negro 1kg", "Azúcar 1kg", "Sal 1kg",
			"Aceite 1L", "Atún 140g", "Mayonesa 390g", "Café 200g",
			"Harina 1kg", "Pasta 200g",
		},
	},
	{
		Category: "Higiene", Unit: "pz", BasePrice: 35.0, BasePurchase: 26.0,
		Names: []string{
			"Papel Higiénico 4 rollos", "Pasta Dental 100ml",
			"Jabón de Tocador 150g", "Shampoo 400ml", "Desodorante 150ml",
		},
	},
	{
		Category: "Limpieza", Unit: "pz", BasePrice: 28.0, BasePurchase: 20.0,
		Names: []string{
			"Cloro 1L", "Detergente 1kg", "Suavizante 850ml",
			"Jabón en Barra 400g", "Limpiador Multiusos 1L",
		},
	},
	{
		Category: "Mascotas", Unit: "pz", BasePrice: 22.0, BasePurchase: 15.0,
		Names: []string{
			"Croquetas Perro 1kg", "Croquetas Gato 1kg",
			"Sobres Gato 85g", "Arena para Gato 5kg",
		},
	},
}

var brandsByCategory = map[string][]string{
	"Refrescos": {"Coca-Cola", "Pepsi", "Jarritos", "Fanta", "Sprite"},
	"Agua":      {"Ciel", "Bonafont", "E-Pura", "Peñafiel"},
	"Jugos":     {"Del Valle", "Jumex", "Tropicana"},
	"Botanas":   {"Sabritas", "Barcel", "Doritos", "Cheetos"},
	"Galletas":  {"Gamesa", "Nabisco", "Cuétara"},
	"Dulces":    {"Marinela", "Ricolino", "Vero", "De La Rosa"},
	"Pan":       {"Bimbo", "Tía Rosa"},
	"Lácteos":   {"Lala", "Alpura", "Nestlé"},
	"Abarrotes": {"Herdez", "La Costeña", "Verde Valle"},
	"Higiene":   {"Colgate", "Palmolive", "Pantene", "Pétalo"},
	"Limpieza":  {"Cloralex", "Ariel", "Pinol", "Roma"},
	"Mascotas":  {"Pedigree", "Whiskas", "Purina"},
}

var supplierByBrand = map[string]string{
	"Coca-Cola": "FEMSA (Coca-Cola FEMSA)",
	"Sprite":    "FEMSA (Coca-Cola FEMSA)",
	"Fanta":     "FEMSA (Coca-Cola FEMSA)",
	"Ciel":      "FEMSA (Coca-Cola FEMSA)",
	"Pepsi":     "PepsiCo Bebidas",
	"E-Pura":    "PepsiCo Bebidas",
	"Jarritos":  "Jarritos (Novamex)",
	"Peñafiel":  "Peñafiel (Keurig Dr Pepper)",
	"Bonafont":  "Danone Waters",
	"Del Valle": "Coca-Cola (Del Valle)",
	"Jumex":     "Grupo Jumex",
	"Sabritas":  "PepsiCo Alimentos",
	"Doritos":   "PepsiCo Alimentos",
	"Cheetos":   "PepsiCo Alimentos",
	"Barcel":    "Grupo Bimbo (Barcel)",
	"Gamesa":    "PepsiCo Alimentos (Gamesa)",
	"Nabisco":   "Mondelez",
	"Marinela":  "Grupo Bimbo (Marinela)",
	"Bimbo":     "Grupo Bimbo",
	"Tía Rosa":  "Grupo Bimbo",
	"Lala":      "Grupo Lala",
	"Alpura":    "Alpura",
	"Nestlé":    "Nestlé",
	"Herdez":    "Grupo Herdez",
	"La Costeña": "La Costeña",
	"Colgate":   "Colgate-Palmolive",
	"Palmolive": "Colgate-Palmolive",
	"Pantene":   "P&G",
	"Pétalo":    "Kimberly-Clark",
	"Ariel":     "P&G",
	"Pinol":     "AlEn",
	"Roma":      "La Corona",
	"Pedigree":  "Mars Petcare",
	"Whiskas":   "Mars Petcare",
	"Purina":    "Nestlé Purina",
}

// empaques: sufijo de presentación y factor de precio.
var packagings = []struct {
	Suffix string
	Factor float64
}{
	{"", 1.00},
	{" (Promoción)", 1.05},
	{" (Familiar)", 1.20},
	{" (Mini)", 0.90},
}

// Generate produce un catálogo grande y consistente. sizeMultiplier controla
// cuántas variaciones se crean por producto base; baseStock el stock inicial
// aproximado. Se deduplica por (nombre, unidad) y por código.
func Generate(sizeMultiplier, baseStock int) ([]*entity.Product, error) {
	if sizeMultiplier < 1 {
		sizeMultiplier = 1
	}
	usedCodes := make(map[string]struct{})
	usedNames := make(map[string]struct{})

	var products []*entity.Product
	seq := 1
	now := time.Now()

	for _, t := range templates {
		brands := brandsByCategory[t.Category]
		if len(brands) == 0 {
			brands = []string{"Genérico"}
		}
		for _, baseName := range t.Names {
			for _, brand := range brands {
				for k := 0; k < sizeMultiplier; k++ {
					for _, pkg := range packagings {
						name := strings.TrimSpace(brand + " " + baseName + pkg.Suffix)
						if k > 0 {
							// Las variaciones extra se venden como paquete,
							// para que (nombre, unidad) siga siendo único.
							name = fmt.Sprintf("%s Paquete %dpz", name, k+1)
						}

						supplier, ok := supplierByBrand[brand]
						if !ok {
							supplier = "Proveedor oficial " + brand
						}

						// El paquete de n piezas vale casi n veces la pieza.
						packFactor := 1.0 + float64(k)*0.95
						price := decimal.NewFromFloat(t.BasePrice * pkg.Factor * packFactor).Round(2)
						purchase := decimal.NewFromFloat(t.BasePurchase * pkg.Factor * packFactor).Round(2)
						stock := baseStock + (k%10)*3
						if stock < 0 {
							stock = 0
						}

						code, err := ean13.Make(ean13.InternalPrefix, seq)
						if err != nil {
							return nil, err
						}
						seq++

						nameKey := strings.ToLower(name) + "|" + strings.ToLower(t.Unit)
						if _, dup := usedNames[nameKey]; dup {
							continue
						}
						usedNames[nameKey] = struct{}{}
						if _, dup := usedCodes[code]; dup {
							continue
						}
						usedCodes[code] = struct{}{}

						products = append(products, &entity.Product{
							Barcode:       code,
							Name:          name,
							Price:         price,
							Stock:         stock,
							Category:      t.Category,
							Supplier:      supplier,
							PurchasePrice: purchase,
							Unit:          t.Unit,
							CreatedAt:     now,
							UpdatedAt:     now,
						})
					}
				}
			}
		}
	}

	// Orden por categoría y nombre para que el archivo sea navegable.
	sort.Slice(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// Validate revisa el catálogo y devuelve la lista de errores encontrados
// (vacía si todo está bien). No modifica nada.
func Validate(products []*entity.Product) []string {
	var errs []string
	seenCodes := make(map[string]int)
	seenNames := make(map[string]int)

	for i, p := range products {
		if p.Barcode == "" {
			errs = append(errs, fmt.Sprintf("item %d: falta codigo_barras", i))
		} else if prev, dup := seenCodes[p.Barcode]; dup {
			errs = append(errs, fmt.Sprintf("item %d: codigo_barras duplicado %q (primero en %d)", i, p.Barcode, prev))
		} else {
			seenCodes[p.Barcode] = i
		}

		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("item %d: falta nombre", i))
		} else {
			key := strings.ToLower(strings.TrimSpace(p.Name)) + "|" + strings.ToLower(strings.TrimSpace(p.Unit))
			if prev, dup := seenNames[key]; dup {
				errs = append(errs, fmt.Sprintf("item %d: nombre+unidad duplicado %q (primero en %d)", i, p.Name, prev))
			} else {
				seenNames[key] = i
			}
		}

		if !p.Price.IsPositive() {
			errs = append(errs, fmt.Sprintf("item %d: precio <= 0", i))
		}
		if p.PurchasePrice.IsNegative() {
			errs = append(errs, fmt.Sprintf("item %d: precio_compra < 0", i))
		}
		if p.Stock < 0 {
			errs = append(errs, fmt.Sprintf("item %d: stock < 0", i))
		}
	}
	return errs
}
