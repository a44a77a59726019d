// Package ports define los puertos de salida hacia los servicios del ERP
// central. Las implementaciones concretas viven en infrastructure/erp; para
// tests se pueden inyectar mocks.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// ConsultaStock criterios de búsqueda de stock. Todos los campos son
// opcionales salvo la empresa, que viaja aparte.
type ConsultaStock struct {
	CodigoArticulo string
	Lote           string
	Almacen        string
	Ubicacion      string
	Descripcion    string
}

// ServicioStocks consulta de stock disponible.
type ServicioStocks interface {
	StockDisponible(ctx context.Context, empresa string, consulta ConsultaStock) ([]entity.StockDisponible, error)
}

// ServicioAlmacenes resolución de almacenes autorizados para un operario.
// La política de numeración de almacenes por centro logístico es del ERP;
// este servicio es la única fuente de esa lista.
type ServicioAlmacenes interface {
	AlmacenesAutorizados(ctx context.Context, empresa, centro string, codigosExplicitos []string) ([]entity.Almacen, error)
}

// ServicioAcumulados acumulado diario de diferencias de un operario para un
// artículo, excluyendo el inventario indicado (para no contar dos veces lo
// que el propio inventario está registrando).
type ServicioAcumulados interface {
	AcumuladoDiario(ctx context.Context, idOperario int64, codigoArticulo, excluirInventario string) (entity.AcumuladoDiario, error)
}

// ServicioLimites límites diarios configurados por operario.
type ServicioLimites interface {
	LimitesOperario(ctx context.Context, idOperario int64) (entity.LimitesOperario, error)
}

// ServicioPrecios precio unitario de un artículo en un almacén.
type ServicioPrecios interface {
	PrecioUnitario(ctx context.Context, empresa, codigoArticulo, almacen string) (decimal.Decimal, error)
}

// ResultadoConsolidacion resultado de consolidar un inventario.
// LineasDivergentes > 0 indica que la consolidación detectó nuevas
// divergencias entre la foto y el stock vivo.
type ResultadoConsolidacion struct {
	LineasDivergentes int
}

// ServicioInventarios ciclo de vida de inventarios y sus líneas.
type ServicioInventarios interface {
	Crear(ctx context.Context, inv entity.Inventario) (entity.Inventario, error)
	Listar(ctx context.Context, empresa string) ([]entity.Inventario, error)
	Obtener(ctx context.Context, idInventario string) (entity.Inventario, error)
	LineasConteo(ctx context.Context, idInventario string) ([]entity.LineaConteo, error)
	LineasProblematicas(ctx context.Context, idInventario string) ([]entity.LineaProblematica, error)
	GuardarConteo(ctx context.Context, idInventario string, lineas []entity.LineaConteo) error
	GuardarReconteo(ctx context.Context, idInventario string, lineas []entity.LineaProblematica) error
	Consolidar(ctx context.Context, idInventario string) (ResultadoConsolidacion, error)
	Cerrar(ctx context.Context, idInventario string) error
}

// ServicioTraspasos órdenes de traspaso.
type ServicioTraspasos interface {
	CrearOrden(ctx context.Context, orden entity.OrdenTraspaso) (entity.OrdenTraspaso, error)
	ActualizarLinea(ctx context.Context, idOrden string, linea entity.LineaTraspaso) error
	CancelarLinea(ctx context.Context, idOrden string, numLinea int) error
	ListarOrdenes(ctx context.Context, empresa string) ([]entity.OrdenTraspaso, error)
}
