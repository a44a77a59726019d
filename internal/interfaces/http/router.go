package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/conteo"
	"github.com/tu-usuario/sga-almacen/internal/application/inventarios"
	"github.com/tu-usuario/sga-almacen/internal/application/reconteo"
	"github.com/tu-usuario/sga-almacen/internal/application/stocks"
	"github.com/tu-usuario/sga-almacen/internal/application/traspasos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StocksUC      *stocks.UseCase
	InventariosUC *inventarios.UseCase
	ConteoUC      *conteo.UseCase
	ReconteoUC    *reconteo.UseCase
	TraspasosUC   *traspasos.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token de operario.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Stocks
	stockHandler := NewStockHandler(deps.StocksUC)
	api.Get("/stocks", stockHandler.Consultar)

	// Inventarios: ciclo de vida, conteo y reconteo
	invHandler := NewInventarioHandler(deps.InventariosUC, deps.ConteoUC, deps.ReconteoUC)
	inv := api.Group("/inventarios")
	inv.Post("/", invHandler.Crear)
	inv.Get("/", invHandler.Listar)
	inv.Get("/:id/lineas", invHandler.Lineas)
	inv.Post("/:id/lineas/:linea/validar", invHandler.ValidarLinea)
	inv.Post("/:id/conteo", invHandler.GuardarConteo)
	inv.Get("/:id/problematicas", invHandler.LineasProblematicas)
	inv.Post("/:id/problematicas/validar", invHandler.ValidarReconteo)
	inv.Post("/:id/reconteo", invHandler.GuardarReconteo)
	inv.Post("/:id/consolidar", invHandler.Consolidar)
	inv.Post("/:id/cerrar", invHandler.Cerrar)

	// Traspasos
	traspasoHandler := NewTraspasoHandler(deps.TraspasosUC)
	tras := api.Group("/traspasos")
	tras.Post("/", traspasoHandler.Crear)
	tras.Get("/", traspasoHandler.Listar)
	tras.Put("/:id/lineas/:linea", traspasoHandler.ActualizarLinea)
	tras.Delete("/:id/lineas/:linea", traspasoHandler.CancelarLinea)
}
