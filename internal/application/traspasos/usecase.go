package traspasos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// UseCase construye y envía órdenes de traspaso con comprobación previa de
// suficiencia de stock en los almacenes autorizados del operario.
type UseCase struct {
	traspasos ports.ServicioTraspasos
	stocks    ports.ServicioStocks
	almacenes ports.ServicioAlmacenes
	validate  *validator.Validate
	log       *logger.Logger
}

// New construye el caso de uso.
func New(
	traspasos ports.ServicioTraspasos,
	stocks ports.ServicioStocks,
	almacenes ports.ServicioAlmacenes,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		traspasos: traspasos,
		stocks:    stocks,
		almacenes: almacenes,
		validate:  validator.New(),
		log:       log,
	}
}

// PuedeCrearOrden indica si la petición cumple los requisitos mínimos de
// envío: toda línea con artículo, cantidad positiva, almacén destino y
// operario asignado. Es la condición de habilitación del botón de envío.
func (uc *UseCase) PuedeCrearOrden(req dto.CrearOrdenRequest) bool {
	return construirOrden("", "", 0, req).PuedeCrearse()
}

// CrearOrden valida la petición, comprueba la suficiencia de stock por
// artículo sobre los almacenes autorizados y crea la orden en el ERP.
// Cualquier déficit rechaza el envío completo: no hay compromiso parcial.
func (uc *UseCase) CrearOrden(ctx context.Context, op entity.Contexto, req dto.CrearOrdenRequest) (entity.OrdenTraspaso, error) {
	if err := uc.validate.Struct(req); err != nil {
		return entity.OrdenTraspaso{}, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	orden := construirOrden(uuid.New().String(), op.Empresa, op.IDOperario, req)
	if !orden.PuedeCrearse() {
		return entity.OrdenTraspaso{}, fmt.Errorf("%w: toda línea necesita artículo, cantidad positiva, almacén destino y operario asignado", domain.ErrEntradaInvalida)
	}

	autorizados, err := uc.almacenes.AlmacenesAutorizados(ctx, op.Empresa, req.Centro, req.CodigosAlmacen)
	if err != nil {
		return entity.OrdenTraspaso{}, err
	}
	permitido := make(map[string]bool, len(autorizados))
	for _, a := range autorizados {
		permitido[a.Codigo] = true
	}

	// Suficiencia de stock: una consulta por artículo, sumando solo las filas
	// de almacenes autorizados.
	disponiblePorArticulo := make(map[string]decimal.Decimal)
	for _, l := range orden.Lineas {
		if _, ok := disponiblePorArticulo[l.CodigoArticulo]; ok {
			continue
		}
		filas, err := uc.stocks.StockDisponible(ctx, op.Empresa, ports.ConsultaStock{CodigoArticulo: l.CodigoArticulo})
		if err != nil {
			return entity.OrdenTraspaso{}, err
		}
		total := decimal.Zero
		for _, f := range filas {
			if permitido[f.Almacen] {
				total = total.Add(f.Cantidad)
			}
		}
		disponiblePorArticulo[l.CodigoArticulo] = total
	}
	// Varias líneas del mismo artículo compiten por el mismo disponible.
	solicitadoPorArticulo := make(map[string]decimal.Decimal)
	for _, l := range orden.Lineas {
		solicitadoPorArticulo[l.CodigoArticulo] = solicitadoPorArticulo[l.CodigoArticulo].Add(l.Cantidad)
	}
	for articulo, solicitado := range solicitadoPorArticulo {
		disponible := disponiblePorArticulo[articulo]
		if solicitado.GreaterThan(disponible) {
			deficit := solicitado.Sub(disponible)
			return entity.OrdenTraspaso{}, fmt.Errorf("%w: artículo %s: solicitado %s, disponible %s (déficit %s)",
				domain.ErrStockInsuficiente, articulo, solicitado, disponible, deficit)
		}
	}

	creada, err := uc.traspasos.CrearOrden(ctx, orden)
	if err != nil {
		return entity.OrdenTraspaso{}, err
	}
	uc.log.Info().
		Str("orden", creada.ID).
		Int("lineas", len(creada.Lineas)).
		Int64("operario", op.IDOperario).
		Msg("orden de traspaso creada")
	return creada, nil
}

// ActualizarLinea modifica cantidad u operario asignado de una línea.
// Las líneas canceladas o completadas no se modifican.
func (uc *UseCase) ActualizarLinea(ctx context.Context, op entity.Contexto, idOrden string, numLinea int, req dto.ActualizarLineaRequest) error {
	linea, err := uc.buscarLinea(ctx, op.Empresa, idOrden, numLinea)
	if err != nil {
		return err
	}
	if linea.Estado == entity.LineaCancelada || linea.Estado == entity.LineaCompletada {
		return fmt.Errorf("%w: la línea %d está %s", domain.ErrConflicto, numLinea, linea.Estado)
	}
	if req.Cantidad != nil {
		if !req.Cantidad.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrEntradaInvalida)
		}
		linea.Cantidad = *req.Cantidad
	}
	if req.IDOperarioAsignado != nil {
		if *req.IDOperarioAsignado <= 0 {
			return fmt.Errorf("%w: operario asignado inválido", domain.ErrEntradaInvalida)
		}
		linea.IDOperarioAsignado = *req.IDOperarioAsignado
		linea.Estado = entity.LineaAsignada
	}
	return uc.traspasos.ActualizarLinea(ctx, idOrden, linea)
}

// CancelarLinea cancela una línea pendiente o asignada.
func (uc *UseCase) CancelarLinea(ctx context.Context, op entity.Contexto, idOrden string, numLinea int) error {
	linea, err := uc.buscarLinea(ctx, op.Empresa, idOrden, numLinea)
	if err != nil {
		return err
	}
	if linea.Estado == entity.LineaCompletada {
		return fmt.Errorf("%w: una línea completada no se puede cancelar", domain.ErrConflicto)
	}
	return uc.traspasos.CancelarLinea(ctx, idOrden, numLinea)
}

// ListarOrdenes devuelve las órdenes de traspaso de la empresa.
func (uc *UseCase) ListarOrdenes(ctx context.Context, op entity.Contexto) ([]entity.OrdenTraspaso, error) {
	return uc.traspasos.ListarOrdenes(ctx, op.Empresa)
}

func (uc *UseCase) buscarLinea(ctx context.Context, empresa, idOrden string, numLinea int) (entity.LineaTraspaso, error) {
	ordenes, err := uc.traspasos.ListarOrdenes(ctx, empresa)
	if err != nil {
		return entity.LineaTraspaso{}, err
	}
	for _, o := range ordenes {
		if o.ID != idOrden {
			continue
		}
		for _, l := range o.Lineas {
			if l.NumLinea == numLinea {
				return l, nil
			}
		}
	}
	return entity.LineaTraspaso{}, domain.ErrNoEncontrado
}

func construirOrden(id, empresa string, creadoPor int64, req dto.CrearOrdenRequest) entity.OrdenTraspaso {
	orden := entity.OrdenTraspaso{
		ID:            id,
		Empresa:       empresa,
		CreadoPor:     creadoPor,
		FechaCreacion: time.Now(),
		Lineas:        make([]entity.LineaTraspaso, 0, len(req.Lineas)),
	}
	for i, l := range req.Lineas {
		estado := entity.LineaPendiente
		if l.IDOperarioAsignado > 0 {
			estado = entity.LineaAsignada
		}
		orden.Lineas = append(orden.Lineas, entity.LineaTraspaso{
			NumLinea:           i + 1,
			CodigoArticulo:     l.CodigoArticulo,
			Cantidad:           l.Cantidad,
			AlmacenOrigen:      l.AlmacenOrigen,
			UbicacionOrigen:    l.UbicacionOrigen,
			AlmacenDestino:     l.AlmacenDestino,
			UbicacionDestino:   l.UbicacionDestino,
			IDOperarioAsignado: l.IDOperarioAsignado,
			Estado:             estado,
		})
	}
	return orden
}
