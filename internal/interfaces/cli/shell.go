// Package cli es la capa de presentación mínima de la aplicación: un menú de
// terminal que traduce acciones del usuario a llamadas de los casos de uso.
// Cada acción corre hasta terminar antes de atender la siguiente; no hay
// tareas en segundo plano.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tu-usuario/tiendita-pos/internal/application/auth"
	"github.com/tu-usuario/tiendita-pos/internal/application/dto"
	"github.com/tu-usuario/tiendita-pos/internal/application/sales"
	"github.com/tu-usuario/tiendita-pos/internal/application/usecase"
	"github.com/tu-usuario/tiendita-pos/internal/domain/entity"
	"github.com/tu-usuario/tiendita-pos/pkg/config"
)

// ShellDeps dependencias del shell.
type ShellDeps struct {
	Auth     *auth.UseCase
	Products *usecase.ProductUseCase
	Sales    *sales.UseCase
	Checkout *sales.CheckoutUseCase
	Ticket   *sales.TicketUseCase
	Config   *config.Config
}

// Shell lee comandos de in y escribe a out hasta que el usuario sale.
type Shell struct {
	deps ShellDeps
	in   *bufio.Reader
	out  io.Writer
}

// NewShell construye el shell.
func NewShell(deps ShellDeps, in *bufio.Reader, out io.Writer) *Shell {
	return &Shell{deps: deps, in: in, out: out}
}

// Run ejecuta login y el ciclo principal. Regresa cuando el usuario sale.
func (s *Shell) Run() {
	fmt.Fprintf(s.out, "%s v%s\n", s.deps.Config.AppName, s.deps.Config.Version)
	for {
		if s.deps.Auth.CurrentUser() == nil {
			if !s.login() {
				return
			}
		}
		if !s.mainMenu() {
			return
		}
	}
}

func (s *Shell) login() bool {
	for {
		fmt.Fprint(s.out, "\nUsuario (vacío para salir): ")
		username := s.readLine()
		if username == "" {
			return false
		}
		fmt.Fprint(s.out, "Contraseña: ")
		password := s.readLine()

		session, err := s.deps.Auth.Login(username, password)
		if err != nil {
			fmt.Fprintln(s.out, "Login fallido:", err)
			continue
		}
		fmt.Fprintf(s.out, "Bienvenido, %s (%s)\n", session.User.FullName, session.User.Role)
		return true
	}
}

// mainMenu despacha una acción. Devuelve false para terminar el programa.
func (s *Shell) mainMenu() bool {
	a := s.deps.Auth
	fmt.Fprintln(s.out, "\n--- Menú principal ---")
	if a.HasPermission(entity.ActionVentas) {
		fmt.Fprintln(s.out, "1) Registrar venta")
	}
	if a.HasPermission(entity.ActionProductos) {
		fmt.Fprintln(s.out, "2) Buscar productos")
	}
	if a.HasPermission(entity.ActionInventario) {
		fmt.Fprintln(s.out, "3) Inventario (stock bajo / ajustes)")
	}
	if a.HasPermission(entity.ActionReportes) {
		fmt.Fprintln(s.out, "4) Reportes")
	}
	fmt.Fprintln(s.out, "5) Facturar venta / exportar ticket")
	fmt.Fprintln(s.out, "6) Cambiar tema")
	fmt.Fprintln(s.out, "7) Cerrar sesión")
	if a.HasPermission(entity.ActionUsuarios) {
		fmt.Fprintln(s.out, "8) Usuarios")
	}
	fmt.Fprintln(s.out, "0) Salir")
	fmt.Fprint(s.out, "> ")

	switch s.readLine() {
	case "1":
		s.guard(entity.ActionVentas, s.handleCheckout)
	case "2":
		s.guard(entity.ActionProductos, s.handleSearch)
	case "3":
		s.guard(entity.ActionInventario, s.handleInventory)
	case "4":
		s.guard(entity.ActionReportes, s.handleReports)
	case "5":
		s.handleTicket()
	case "6":
		theme, err := s.deps.Config.ToggleTheme()
		if err != nil {
			fmt.Fprintln(s.out, "No se pudo guardar la configuración:", err)
		} else {
			fmt.Fprintln(s.out, "Tema actual:", theme)
		}
	case "7":
		s.deps.Auth.Logout()
	case "8":
		s.guard(entity.ActionUsuarios, s.handleUsers)
	case "0":
		return false
	}
	return true
}

func (s *Shell) guard(action string, handler func()) {
	if !s.deps.Auth.HasPermission(action) {
		fmt.Fprintln(s.out, "Acceso denegado")
		return
	}
	handler()
}

func (s *Shell) handleCheckout() {
	var items []dto.CartItem
	fmt.Fprintln(s.out, "\n=== Nueva venta === (código vacío para cobrar)")
	for {
		fmt.Fprint(s.out, "Código de barras: ")
		code := s.readLine()
		if code == "" {
			break
		}
		product, err := s.deps.Products.FindByBarcode(code)
		if err != nil || product == nil {
			fmt.Fprintln(s.out, "Producto no encontrado")
			continue
		}
		fmt.Fprintf(s.out, "%s  $%s  (stock %d)\n", product.Name, product.Price.StringFixed(2), product.Stock)
		fmt.Fprint(s.out, "Cantidad: ")
		qty, err := strconv.Atoi(s.readLine())
		if err != nil || qty <= 0 {
			fmt.Fprintln(s.out, "Cantidad inválida")
			continue
		}
		items = append(items, dto.CartItem{Barcode: code, Quantity: qty})
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "Venta cancelada: carrito vacío")
		return
	}
	fmt.Fprintf(s.out, "Método de pago [%s/%s/%s]: ", entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer)
	method := s.readLine()

	sale, err := s.deps.Checkout.Checkout(s.deps.Auth.CurrentUser().Username, dto.CheckoutRequest{
		Items:         items,
		PaymentMethod: method,
	})
	if err != nil {
		fmt.Fprintln(s.out, "No se pudo registrar la venta:", err)
		return
	}
	fmt.Fprintf(s.out, "Venta registrada. Folio: %s  Total: $%s\n", sale.Folio, sale.Total.StringFixed(2))
}

func (s *Shell) handleSearch() {
	fmt.Fprint(s.out, "\nBuscar por nombre: ")
	term := s.readLine()
	results, err := s.deps.Products.FindByName(term)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(s.out, "Sin resultados")
		return
	}
	for _, p := range results {
		fmt.Fprintf(s.out, "%s  %s  $%s  stock %d  [%s]\n",
			p.Barcode, p.Name, p.Price.StringFixed(2), p.Stock, p.Category)
	}
}

func (s *Shell) handleInventory() {
	fmt.Fprintln(s.out, "\n1) Stock bajo  2) Ajustar stock")
	fmt.Fprint(s.out, "> ")
	switch s.readLine() {
	case "1":
		low, err := s.deps.Products.LowStock(usecase.DefaultLowStockThreshold)
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		fmt.Fprintf(s.out, "Productos con stock <= %d: %d\n", usecase.DefaultLowStockThreshold, len(low))
		for _, p := range low {
			fmt.Fprintf(s.out, "%s  %s  stock %d\n", p.Barcode, p.Name, p.Stock)
		}
	case "2":
		fmt.Fprint(s.out, "Código de barras: ")
		code := s.readLine()
		fmt.Fprint(s.out, "Delta (+entrada / -salida): ")
		delta, err := strconv.Atoi(s.readLine())
		if err != nil {
			fmt.Fprintln(s.out, "Delta inválido")
			return
		}
		if err := s.deps.Products.AdjustStock(code, delta); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		fmt.Fprintln(s.out, "Stock ajustado")
	}
}

func (s *Shell) handleReports() {
	fmt.Fprintln(s.out, "\n1) Ventas de hoy  2) Reporte por rango  3) Más vendidos")
	fmt.Fprint(s.out, "> ")
	switch s.readLine() {
	case "1":
		today, err := s.deps.Sales.Today()
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		fmt.Fprintf(s.out, "Ventas de hoy: %d  Total: $%s\n",
			len(today), sales.TotalAmount(today).StringFixed(2))
	case "2":
		fmt.Fprint(s.out, "Fecha inicio (YYYY-MM-DD): ")
		start := s.readLine()
		fmt.Fprint(s.out, "Fecha fin (YYYY-MM-DD): ")
		end := s.readLine()
		report, err := s.deps.Sales.Report(start, end)
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		fmt.Fprintf(s.out, "Período: %s\nVentas: %d  Total: $%s  Promedio: $%s\n",
			report.Period, report.SaleCount,
			report.TotalAmount.StringFixed(2), report.AverageSale.StringFixed(2))
		for cashier, total := range report.ByCashier {
			fmt.Fprintf(s.out, "  cajero %s: $%s\n", cashier, total.StringFixed(2))
		}
		for method, total := range report.ByPaymentMethod {
			fmt.Fprintf(s.out, "  %s: $%s\n", method, total.StringFixed(2))
		}
	case "3":
		top, err := s.deps.Sales.TopProducts(sales.DefaultTopLimit)
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			return
		}
		for i, t := range top {
			fmt.Fprintf(s.out, "%2d. %s  x%d  $%s\n", i+1, t.Name, t.Quantity, t.Total.StringFixed(2))
		}
	}
}

func (s *Shell) handleUsers() {
	users, err := s.deps.Auth.Users()
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "\nUsuario          Rol      Nombre                    Activo  Último acceso")
	for _, u := range users {
		r := dto.NewUserResponse(u)
		last := "nunca"
		if r.LastLogin != nil {
			last = r.LastLogin.Format("02/01/2006 15:04")
		}
		activo := "sí"
		if !r.Active {
			activo = "no"
		}
		fmt.Fprintf(s.out, "%-16s %-8s %-25s %-7s %s\n", r.Username, r.Role, r.FullName, activo, last)
	}
}

func (s *Shell) handleTicket() {
	fmt.Fprint(s.out, "\nFolio: ")
	folio := s.readLine()
	sale, err := s.deps.Sales.FindByFolio(folio)
	if err != nil || sale == nil {
		fmt.Fprintln(s.out, "Venta no encontrada")
		return
	}
	if !sale.Invoiced {
		fmt.Fprint(s.out, "RFC del cliente (vacío para no facturar): ")
		if rfc := s.readLine(); rfc != "" {
			if err := s.deps.Sales.MarkInvoiced(folio, rfc); err != nil {
				fmt.Fprintln(s.out, "Error:", err)
				return
			}
			fmt.Fprintln(s.out, "Venta marcada como facturada")
		}
	}
	fmt.Fprint(s.out, "Exportar ticket PDF (s/n): ")
	if !strings.EqualFold(s.readLine(), "s") {
		return
	}
	data, err := s.deps.Ticket.Export(folio)
	if err != nil {
		fmt.Fprintln(s.out, "No se pudo generar el ticket:", err)
		return
	}
	name := "ticket-" + folio + ".pdf"
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Fprintln(s.out, "No se pudo escribir el archivo:", err)
		return
	}
	fmt.Fprintln(s.out, "Ticket exportado:", name)
}

func (s *Shell) readLine() string {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(line)
}
