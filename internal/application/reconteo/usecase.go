// Package reconteo reconcilia las líneas problemáticas de un inventario:
// líneas cuya foto divergió del stock vivo al consolidar, que se recuentan
// bajo las mismas reglas de límite y se vuelven a consolidar.
package reconteo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/limites"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// EstadoReconteo desenlace del guardado de reconteo + consolidación.
type EstadoReconteo string

const (
	// EstadoConsolidado guardado y consolidación limpios.
	EstadoConsolidado EstadoReconteo = "CONSOLIDADO"
	// EstadoConsolidadoConAvisos la consolidación detectó nuevas divergencias.
	EstadoConsolidadoConAvisos EstadoReconteo = "CONSOLIDADO_CON_AVISOS"
	// EstadoGuardadoSinConsolidar el reconteo se guardó pero la consolidación
	// falló; el inventario queda en un estado conocido y reintentable.
	EstadoGuardadoSinConsolidar EstadoReconteo = "GUARDADO_SIN_CONSOLIDAR"
)

// ResultadoReconteo valor de salida del guardado; la capa de presentación
// decide cómo mostrarlo (ningún caso de uso cierra diálogos).
type ResultadoReconteo struct {
	Estado EstadoReconteo
	Avisos []string
}

// UseCase carga y reconcilia líneas problemáticas.
type UseCase struct {
	inventarios ports.ServicioInventarios
	acumulados  ports.ServicioAcumulados
	limitesOp   ports.ServicioLimites
	precios     ports.ServicioPrecios
	log         *logger.Logger

	mu       sync.Mutex
	trabajos map[string]*trabajo // por id de inventario
}

// New construye el caso de uso.
func New(
	inventarios ports.ServicioInventarios,
	acumulados ports.ServicioAcumulados,
	limitesOp ports.ServicioLimites,
	precios ports.ServicioPrecios,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		inventarios: inventarios,
		acumulados:  acumulados,
		limitesOp:   limitesOp,
		precios:     precios,
		log:         log,
		trabajos:    make(map[string]*trabajo),
	}
}

// trabajo conjunto de trabajo de reconciliación de un inventario.
type trabajo struct {
	inventario entity.Inventario
	lineas     []entity.LineaProblematica
}

// CargarLineasProblematicas pide al ERP las líneas divergentes (el cálculo de
// divergencia es del servidor). La cantidad propuesta al operario es el stock
// vivo del sistema; CantidadRecontada queda a nil hasta que el operario valida
// la línea, de modo que "nada recontado" sea distinguible al guardar.
func (uc *UseCase) CargarLineasProblematicas(ctx context.Context, op entity.Contexto, idInventario string) ([]entity.LineaProblematica, error) {
	inv, err := uc.inventarios.Obtener(ctx, idInventario)
	if err != nil {
		return nil, err
	}
	lineas, err := uc.inventarios.LineasProblematicas(ctx, idInventario)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.trabajos[idInventario] = &trabajo{inventario: inv, lineas: lineas}
	uc.mu.Unlock()
	return lineas, nil
}

// ResultadoValidacion resultado de validar el reconteo de una línea.
type ResultadoValidacion struct {
	Aceptada          bool
	UnidadesExcedidas bool
	EurosExcedidos    bool
	CantidadAplicada  decimal.Decimal
}

// ValidarLinea aplica a una línea problemática la misma regla de límites que
// el conteo, con la referencia en el stock vivo del sistema. Cada línea se
// valida de forma independiente (acumulación por artículo del día, sin sumar
// el resto del conjunto de trabajo). Si el límite se excede la línea vuelve
// al stock vivo.
func (uc *UseCase) ValidarLinea(ctx context.Context, op entity.Contexto, idInventario, codigoArticulo, ubicacion, lote, cantidadTexto string) (ResultadoValidacion, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, ok := uc.trabajos[idInventario]
	if !ok {
		return ResultadoValidacion{}, domain.ErrSesionNoAbierta
	}
	linea := buscarLinea(t.lineas, codigoArticulo, ubicacion, lote)
	if linea == nil {
		return ResultadoValidacion{}, domain.ErrNoEncontrado
	}
	nueva, ok := parseCantidad(cantidadTexto)
	if !ok {
		return ResultadoValidacion{}, domain.ErrEntradaInvalida
	}

	nuevaDif := nueva.Sub(linea.StockSistema).Abs()
	if !limites.EsSignificativa(nuevaDif) {
		linea.CantidadRecontada = &nueva
		return ResultadoValidacion{Aceptada: true, CantidadAplicada: nueva}, nil
	}

	acum, err := uc.acumulados.AcumuladoDiario(ctx, op.IDOperario, linea.CodigoArticulo, idInventario)
	if err != nil {
		return ResultadoValidacion{}, err
	}
	lim, err := uc.limitesOp.LimitesOperario(ctx, op.IDOperario)
	if err != nil {
		return ResultadoValidacion{}, err
	}
	precio, err := uc.precios.PrecioUnitario(ctx, op.Empresa, linea.CodigoArticulo, t.inventario.Almacen)
	if err != nil {
		uc.log.Warn().Err(err).Str("articulo", linea.CodigoArticulo).Msg("tarifa no disponible, se asume precio 0")
		precio = decimal.Zero
	}

	decision := limites.Evaluar(acum, lim, nuevaDif, precio)
	if decision.Excedido() {
		uc.log.Warn().
			Str("inventario", idInventario).
			Str("articulo", linea.CodigoArticulo).
			Int64("operario", op.IDOperario).
			Msg("límite diario excedido en reconteo, línea revertida al stock del sistema")
		vivo := linea.StockSistema
		linea.CantidadRecontada = &vivo
	} else {
		linea.CantidadRecontada = &nueva
	}
	return ResultadoValidacion{
		Aceptada:          !decision.Excedido(),
		UnidadesExcedidas: decision.UnidadesExcedidas,
		EurosExcedidos:    decision.EurosExcedidos,
		CantidadAplicada:  *linea.CantidadRecontada,
	}, nil
}

// GuardarReconteo guarda todas las líneas recontadas y lanza la consolidación.
// Sin ninguna línea recontada no se hace ninguna llamada remota. Si el guardado
// tiene éxito pero la consolidación falla, el resultado lo indica de forma
// distinguible: los datos están guardados y el inventario queda sin consolidar,
// reintentable con Consolidar.
func (uc *UseCase) GuardarReconteo(ctx context.Context, op entity.Contexto, idInventario string) (ResultadoReconteo, error) {
	uc.mu.Lock()
	t, ok := uc.trabajos[idInventario]
	uc.mu.Unlock()
	if !ok {
		return ResultadoReconteo{}, domain.ErrSesionNoAbierta
	}

	recontadas := make([]entity.LineaProblematica, 0, len(t.lineas))
	for _, l := range t.lineas {
		if l.CantidadRecontada != nil {
			recontadas = append(recontadas, l)
		}
	}
	if len(recontadas) == 0 {
		return ResultadoReconteo{}, domain.ErrNadaQueGuardar
	}

	if err := uc.inventarios.GuardarReconteo(ctx, idInventario, recontadas); err != nil {
		return ResultadoReconteo{}, err
	}
	uc.mu.Lock()
	delete(uc.trabajos, idInventario)
	uc.mu.Unlock()

	res, err := uc.inventarios.Consolidar(ctx, idInventario)
	if err != nil {
		uc.log.Error().Err(err).
			Str("inventario", idInventario).
			Msg("reconteo guardado pero la consolidación falló")
		return ResultadoReconteo{
			Estado: EstadoGuardadoSinConsolidar,
			Avisos: []string{"el reconteo se guardó pero la consolidación falló; reintente la consolidación"},
		}, nil
	}
	if res.LineasDivergentes > 0 {
		return ResultadoReconteo{
			Estado: EstadoConsolidadoConAvisos,
			Avisos: []string{fmt.Sprintf("la consolidación detectó %d líneas divergentes nuevas", res.LineasDivergentes)},
		}, nil
	}
	uc.log.Info().Str("inventario", idInventario).Int("lineas", len(recontadas)).Msg("reconteo guardado y consolidado")
	return ResultadoReconteo{Estado: EstadoConsolidado}, nil
}

// Consolidar reintenta la consolidación de un inventario ya guardado.
func (uc *UseCase) Consolidar(ctx context.Context, idInventario string) (ResultadoReconteo, error) {
	res, err := uc.inventarios.Consolidar(ctx, idInventario)
	if err != nil {
		return ResultadoReconteo{}, err
	}
	if res.LineasDivergentes > 0 {
		return ResultadoReconteo{
			Estado: EstadoConsolidadoConAvisos,
			Avisos: []string{fmt.Sprintf("la consolidación detectó %d líneas divergentes nuevas", res.LineasDivergentes)},
		}, nil
	}
	return ResultadoReconteo{Estado: EstadoConsolidado}, nil
}

func buscarLinea(lineas []entity.LineaProblematica, articulo, ubicacion, lote string) *entity.LineaProblematica {
	for i := range lineas {
		l := &lineas[i]
		if l.CodigoArticulo == articulo && l.Ubicacion == ubicacion && l.Lote == lote {
			return l
		}
	}
	return nil
}

func parseCantidad(texto string) (decimal.Decimal, bool) {
	texto = strings.TrimSpace(strings.ReplaceAll(texto, ",", "."))
	if texto == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(texto)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
