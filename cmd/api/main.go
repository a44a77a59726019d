package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/sga-almacen/internal/application/conteo"
	"github.com/tu-usuario/sga-almacen/internal/application/inventarios"
	"github.com/tu-usuario/sga-almacen/internal/application/reconteo"
	"github.com/tu-usuario/sga-almacen/internal/application/stocks"
	"github.com/tu-usuario/sga-almacen/internal/application/traspasos"
	"github.com/tu-usuario/sga-almacen/internal/infrastructure/erp"
	httpRouter "github.com/tu-usuario/sga-almacen/internal/interfaces/http"
	"github.com/tu-usuario/sga-almacen/pkg/config"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("erp", cfg.ERP.BaseURL).
		Msg("iniciando servicio")

	// Un único cliente HTTP contra el ERP implementa todos los puertos.
	erpClient := erp.NewClient(cfg.ERP, log.Componente("erp"))

	stocksUC := stocks.New(erpClient)
	inventariosUC := inventarios.New(erpClient, log.Componente("inventarios"))
	conteoUC := conteo.New(erpClient, erpClient, erpClient, erpClient, log.Componente("conteo"))
	reconteoUC := reconteo.New(erpClient, erpClient, erpClient, erpClient, log.Componente("reconteo"))
	traspasosUC := traspasos.New(erpClient, erpClient, erpClient, log.Componente("traspasos"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SGA Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StocksUC:      stocksUC,
		InventariosUC: inventariosUC,
		ConteoUC:      conteoUC,
		ReconteoUC:    reconteoUC,
		TraspasosUC:   traspasosUC,
		JWTSecret:     cfg.JWT.Secret,
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

	log.Info().Msg("servicio detenido")
}
