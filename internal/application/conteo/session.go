package conteo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/limites"
)

// Sesion conjunto de trabajo en memoria de las líneas de conteo de un
// inventario abierto, con los dos totales corridos de diferencias. Las líneas
// se tocan de una en una (una acción de usuario por vez); el caso de uso
// serializa el acceso.
type Sesion struct {
	Inventario entity.Inventario
	Lineas     []entity.LineaConteo

	// Totales corridos sobre todas las líneas de la sesión.
	ValorDiferenciasActual    decimal.Decimal
	UnidadesDiferenciasActual decimal.Decimal

	precios *cachePrecios
}

// linea devuelve el puntero a la línea con ese número, o nil.
func (s *Sesion) linea(numLinea int) *entity.LineaConteo {
	for i := range s.Lineas {
		if s.Lineas[i].NumLinea == numLinea {
			return &s.Lineas[i]
		}
	}
	return nil
}

// recalcularTotales recorre todas las líneas y recompone los dos totales.
// Las diferencias por debajo del épsilon no acumulan.
func (s *Sesion) recalcularTotales(ctx context.Context) {
	unidades := decimal.Zero
	valor := decimal.Zero
	for i := range s.Lineas {
		l := &s.Lineas[i]
		dif := l.Diferencia().Abs()
		if !limites.EsSignificativa(dif) {
			continue
		}
		unidades = unidades.Add(dif)
		precio := s.precios.Precio(ctx, s.Inventario.Empresa, l.CodigoArticulo, s.Inventario.Almacen)
		valor = valor.Add(dif.Mul(precio))
	}
	s.UnidadesDiferenciasActual = unidades
	s.ValorDiferenciasActual = valor
}
