package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/facturas-local/internal/application/billing"
	httpRouter "github.com/jhoicas/facturas-local/internal/interfaces/http"
	"github.com/jhoicas/facturas-local/pkg/config"
	"github.com/jhoicas/facturas-local/pkg/logger"
	"github.com/jhoicas/facturas-local/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	slots, closeSlots, err := openSlotStore(ctx, cfg)
	if err != nil {
		// Sin almacenamiento la sesión sigue, pero solo en memoria.
		log.Error().Err(err).Msg("almacenamiento local no disponible; las facturas no se guardarán")
	}
	defer closeSlots()

	// Única instancia del almacén para toda la sesión; se inyecta en cada handler.
	store := billing.NewInvoiceStore(slots, billing.InvoiceStoreConfig{
		Key: cfg.Storage.Key,
		Log: log,
	})
	log.Info().Int("invoices", len(store.Invoices())).Msg("facturas cargadas")

	formatter, err := money.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store: store,
		Money: formatter,
		Log:   log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
