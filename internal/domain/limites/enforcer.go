package limites

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// epsilon por debajo del cual una diferencia se considera nula y no acumula.
var epsilon = decimal.RequireFromString("0.01")

// Decision resultado de evaluar una diferencia contra los límites del operario.
// Los dos chequeos son independientes; cualquiera de los dos rechaza el cambio.
type Decision struct {
	UnidadesExcedidas bool
	EurosExcedidos    bool
}

// Excedido indica si alguna de las dos dimensiones supera su límite.
func (d Decision) Excedido() bool {
	return d.UnidadesExcedidas || d.EurosExcedidos
}

// Evaluar decide si una nueva diferencia de unidades, sumada al acumulado
// diario del operario, supera los límites configurados. Función pura.
//
// Un límite a 0 significa "sin límite" en esa dimensión. La igualdad exacta
// con el límite no excede (comparación estricta >). Un precio unitario a 0
// (fallo de tarifa) nunca puede disparar por sí solo el límite en euros.
func Evaluar(acum entity.AcumuladoDiario, lim entity.LimitesOperario, nuevaDifUnidades, precioUnitario decimal.Decimal) Decision {
	var d Decision
	if lim.LimiteEuros.GreaterThan(decimal.Zero) {
		nuevosEuros := acum.Euros.Add(nuevaDifUnidades.Mul(precioUnitario))
		d.EurosExcedidos = nuevosEuros.GreaterThan(lim.LimiteEuros)
	}
	if lim.LimiteUnidades.GreaterThan(decimal.Zero) {
		nuevasUnidades := acum.Unidades.Add(nuevaDifUnidades)
		d.UnidadesExcedidas = nuevasUnidades.GreaterThan(lim.LimiteUnidades)
	}
	return d
}

// EsSignificativa indica si una diferencia cuenta para la acumulación.
// Diferencias con valor absoluto menor que 0.01 se tratan como sin diferencia.
func EsSignificativa(dif decimal.Decimal) bool {
	return dif.Abs().GreaterThanOrEqual(epsilon)
}
