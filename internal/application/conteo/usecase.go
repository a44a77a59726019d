package conteo

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/limites"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// UseCase gestiona las sesiones de conteo de inventario: carga de líneas,
// validación de límites de operario en cada cambio y guardado del conteo.
type UseCase struct {
	inventarios ports.ServicioInventarios
	acumulados  ports.ServicioAcumulados
	limitesOp   ports.ServicioLimites
	precios     ports.ServicioPrecios
	log         *logger.Logger

	mu       sync.Mutex
	sesiones map[string]*Sesion // por id de inventario
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
		sesiones:    make(map[string]*Sesion),
	}
}

// ResultadoValidacion resultado de validar el cambio de una línea.
// Si Aceptada es false la línea ha quedado revertida a la cantidad de la foto;
// el cambio no aborta la sesión (semántica de aviso, no de error).
type ResultadoValidacion struct {
	Aceptada            bool
	UnidadesExcedidas   bool
	EurosExcedidos      bool
	CantidadAplicada    decimal.Decimal
	ValorDiferencias    decimal.Decimal
	UnidadesDiferencias decimal.Decimal
}

// AbrirSesion carga el inventario y sus líneas de conteo y crea (o reutiliza)
// la sesión en memoria. Un inventario cerrado no admite sesión.
func (uc *UseCase) AbrirSesion(ctx context.Context, op entity.Contexto, idInventario string) (*Sesion, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.abrirSesionLocked(ctx, idInventario)
}

func (uc *UseCase) abrirSesionLocked(ctx context.Context, idInventario string) (*Sesion, error) {
	if s, ok := uc.sesiones[idInventario]; ok {
		return s, nil
	}
	inv, err := uc.inventarios.Obtener(ctx, idInventario)
	if err != nil {
		return nil, err
	}
	if inv.Estado == entity.EstadoCerrado {
		return nil, domain.ErrInventarioCerrado
	}
	lineas, err := uc.inventarios.LineasConteo(ctx, idInventario)
	if err != nil {
		return nil, err
	}
	s := &Sesion{
		Inventario: inv,
		Lineas:     lineas,
		precios:    newCachePrecios(uc.precios, uc.log),
	}
	s.recalcularTotales(ctx)
	uc.sesiones[idInventario] = s
	return s, nil
}

// Lineas devuelve las líneas de la sesión (abriéndola si hace falta).
func (uc *UseCase) Lineas(ctx context.Context, op entity.Contexto, idInventario string) ([]entity.LineaConteo, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, err := uc.abrirSesionLocked(ctx, idInventario)
	if err != nil {
		return nil, err
	}
	out := make([]entity.LineaConteo, len(s.Lineas))
	copy(out, s.Lineas)
	return out, nil
}

// ObtenerCantidadContada devuelve la cantidad contada de la línea, con el
// texto libre como segundo intento y la foto como valor por defecto.
func (uc *UseCase) ObtenerCantidadContada(linea *entity.LineaConteo) decimal.Decimal {
	return linea.CantidadEfectiva()
}

// ValidarLimiteOperario valida el cambio de cantidad de una línea contra los
// límites diarios del operario y lo aplica o lo revierte.
//
// La diferencia nueva se compara contra el acumulado diario del ERP (que
// excluye este inventario) más las diferencias de otras líneas de esta misma
// sesión para el mismo artículo; la línea que se está validando se excluye de
// esa suma para no contarla dos veces.
func (uc *UseCase) ValidarLimiteOperario(ctx context.Context, op entity.Contexto, idInventario string, numLinea int, cantidadTexto string) (ResultadoValidacion, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.abrirSesionLocked(ctx, idInventario)
	if err != nil {
		return ResultadoValidacion{}, err
	}
	linea := s.linea(numLinea)
	if linea == nil {
		return ResultadoValidacion{}, domain.ErrNoEncontrado
	}
	nueva, ok := parseCantidad(cantidadTexto)
	if !ok {
		return ResultadoValidacion{}, domain.ErrEntradaInvalida
	}

	nuevaDif := nueva.Sub(linea.StockActual).Abs()
	if !limites.EsSignificativa(nuevaDif) {
		// Reintroducir la foto (o un valor a menos de épsilon) no cambia nada.
		aplicarCantidad(linea, nueva, cantidadTexto)
		s.recalcularTotales(ctx)
		return uc.resultado(s, linea, limites.Decision{}), nil
	}

	precio := s.precios.Precio(ctx, op.Empresa, linea.CodigoArticulo, s.Inventario.Almacen)

	acum, err := uc.acumulados.AcumuladoDiario(ctx, op.IDOperario, linea.CodigoArticulo, s.Inventario.ID)
	if err != nil {
		return ResultadoValidacion{}, err
	}
	// Diferencias de esta sesión para el mismo artículo en otras líneas.
	for i := range s.Lineas {
		otra := &s.Lineas[i]
		if otra.NumLinea == numLinea || otra.CodigoArticulo != linea.CodigoArticulo {
			continue
		}
		d := otra.Diferencia().Abs()
		if !limites.EsSignificativa(d) {
			continue
		}
		acum.Unidades = acum.Unidades.Add(d)
		acum.Euros = acum.Euros.Add(d.Mul(precio))
	}

	lim, err := uc.limitesOp.LimitesOperario(ctx, op.IDOperario)
	if err != nil {
		return ResultadoValidacion{}, err
	}

	decision := limites.Evaluar(acum, lim, nuevaDif, precio)
	if decision.Excedido() {
		uc.log.Warn().
			Str("inventario", idInventario).
			Int("linea", numLinea).
			Str("articulo", linea.CodigoArticulo).
			Int64("operario", op.IDOperario).
			Bool("unidades_excedidas", decision.UnidadesExcedidas).
			Bool("euros_excedidos", decision.EurosExcedidos).
			Msg("límite diario excedido, línea revertida a la foto")
		aplicarCantidad(linea, linea.StockActual, linea.StockActual.String())
	} else {
		aplicarCantidad(linea, nueva, cantidadTexto)
	}
	s.recalcularTotales(ctx)
	return uc.resultado(s, linea, decision), nil
}

// GuardarConteo envía TODAS las líneas de la sesión al ERP. Las líneas sin
// cantidad contada se envían con contada = foto (sin diferencia). Si el
// guardado tiene éxito la sesión se descarta.
func (uc *UseCase) GuardarConteo(ctx context.Context, op entity.Contexto, idInventario string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sesiones[idInventario]
	if !ok {
		return domain.ErrSesionNoAbierta
	}
	lineas := make([]entity.LineaConteo, len(s.Lineas))
	copy(lineas, s.Lineas)
	for i := range lineas {
		if lineas[i].CantidadContada == nil {
			efectiva := lineas[i].CantidadEfectiva()
			lineas[i].CantidadContada = &efectiva
		}
	}
	if err := uc.inventarios.GuardarConteo(ctx, idInventario, lineas); err != nil {
		return err
	}
	uc.log.Info().
		Str("inventario", idInventario).
		Int("lineas", len(lineas)).
		Int64("operario", op.IDOperario).
		Msg("conteo guardado")
	delete(uc.sesiones, idInventario)
	return nil
}

// CerrarSesion descarta la sesión sin guardar (el terminal cerró el diálogo).
func (uc *UseCase) CerrarSesion(idInventario string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sesiones, idInventario)
}

func (uc *UseCase) resultado(s *Sesion, linea *entity.LineaConteo, d limites.Decision) ResultadoValidacion {
	return ResultadoValidacion{
		Aceptada:            !d.Excedido(),
		UnidadesExcedidas:   d.UnidadesExcedidas,
		EurosExcedidos:      d.EurosExcedidos,
		CantidadAplicada:    linea.CantidadEfectiva(),
		ValorDiferencias:    s.ValorDiferenciasActual,
		UnidadesDiferencias: s.UnidadesDiferenciasActual,
	}
}

func aplicarCantidad(linea *entity.LineaConteo, cantidad decimal.Decimal, texto string) {
	c := cantidad
	linea.CantidadContada = &c
	linea.CantidadContadaTexto = texto
}

// parseCantidad interpreta el texto tecleado por el operario (coma o punto
// como separador decimal).
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
