package main

import (
	"bufio"
	"os"

	"github.com/tu-usuario/tiendita-pos/internal/application/auth"
	"github.com/tu-usuario/tiendita-pos/internal/application/sales"
	"github.com/tu-usuario/tiendita-pos/internal/application/usecase"
	"github.com/tu-usuario/tiendita-pos/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/tiendita-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/tiendita-pos/internal/interfaces/cli"
	"github.com/tu-usuario/tiendita-pos/pkg/config"
	"github.com/tu-usuario/tiendita-pos/pkg/logger"
)

func main() {
	cfg := config.Load("config.json")

	log := logger.New(logger.Config{Env: cfg.Env, Level: "info"})
	log.Info().
		Str("app", cfg.AppName).
		Str("tema", cfg.Theme).
		Msg("iniciando aplicación")

	productRepo := jsonstore.NewProductRepository(cfg.ProductsPath(), log)
	userRepo := jsonstore.NewUserRepository(cfg.UsersPath(), log)
	saleRepo := jsonstore.NewSaleRepository(cfg.SalesPath(), log)

	authUC := auth.NewUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := sales.NewUseCase(saleRepo)
	checkoutUC := sales.NewCheckoutUseCase(productUC, salesUC)
	ticketUC := sales.NewTicketUseCase(salesUC, pdf.NewMarotoTicketGenerator(), cfg.AppName)

	shell := cli.NewShell(cli.ShellDeps{
		Auth:     authUC,
		Products: productUC,
		Sales:    salesUC,
		Checkout: checkoutUC,
		Ticket:   ticketUC,
		Config:   cfg,
	}, bufio.NewReader(os.Stdin), os.Stdout)

	shell.Run()
	log.Info().Msg("aplicación detenida")
}
