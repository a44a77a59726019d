package limites_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/limites"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Evaluar: la regla de límites diarios es una función pura, así que
// los casos se expresan directamente como (acumulado, límites, diferencia,
// precio) → decisión esperada.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Caso base: límites a 0 significan "sin límite", ninguna diferencia por
// grande que sea puede exceder.
func TestEvaluar_LimitesACero_NuncaExcede(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: dec("999999"), Euros: dec("999999")}
	lim := entity.LimitesOperario{LimiteEuros: decimal.Zero, LimiteUnidades: decimal.Zero}

	d := limites.Evaluar(acum, lim, dec("100000"), dec("50"))

	assert.False(t, d.Excedido(), "con ambos límites a 0 nunca debe excederse")
	assert.False(t, d.UnidadesExcedidas)
	assert.False(t, d.EurosExcedidos)
}

// La igualdad exacta con el límite no excede: la comparación es estricta (>).
func TestEvaluar_IgualdadExactaConElLimite_NoExcede(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: dec("90"), Euros: dec("90")}
	lim := entity.LimitesOperario{LimiteEuros: dec("100"), LimiteUnidades: dec("100")}

	// 90 + 10 = 100 en ambas dimensiones (precio 1): justo en el límite.
	d := limites.Evaluar(acum, lim, dec("10"), dec("1"))

	assert.False(t, d.Excedido(), "llegar exactamente al límite no debe exceder")
}

// Un céntimo por encima del límite sí excede.
func TestEvaluar_UnCentimoPorEncima_Excede(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: decimal.Zero, Euros: dec("90")}
	lim := entity.LimitesOperario{LimiteEuros: dec("100"), LimiteUnidades: decimal.Zero}

	// 90 + 10.01 * 1 = 100.01 > 100
	d := limites.Evaluar(acum, lim, dec("10.01"), dec("1"))

	assert.True(t, d.EurosExcedidos)
	assert.False(t, d.UnidadesExcedidas, "el límite de unidades está a 0 (sin límite)")
	assert.True(t, d.Excedido())
}

// Escenario de referencia: acumulado 90 EUR, límite 100 EUR, el operario
// introduce una diferencia de 3 unidades a 5 EUR: 90 + 15 = 105 > 100.
func TestEvaluar_AcumuladoMasNuevaDiferencia_ExcedeEnEuros(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: dec("20"), Euros: dec("90")}
	lim := entity.LimitesOperario{LimiteEuros: dec("100"), LimiteUnidades: dec("50")}

	d := limites.Evaluar(acum, lim, dec("3"), dec("5"))

	assert.True(t, d.EurosExcedidos, "90 + 3*5 = 105 debe exceder el límite de 100")
	assert.False(t, d.UnidadesExcedidas, "20 + 3 = 23 no excede el límite de 50 unidades")
}

// Las dos dimensiones son independientes: puede excederse solo la de unidades.
func TestEvaluar_SoloUnidadesExcedidas(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: dec("48"), Euros: decimal.Zero}
	lim := entity.LimitesOperario{LimiteEuros: dec("1000"), LimiteUnidades: dec("50")}

	d := limites.Evaluar(acum, lim, dec("5"), dec("1"))

	assert.True(t, d.UnidadesExcedidas, "48 + 5 = 53 > 50")
	assert.False(t, d.EurosExcedidos, "5 EUR no excede el límite de 1000")
	assert.True(t, d.Excedido())
}

// Precio 0 (fallo de tarifa): la dimensión de euros nunca puede dispararse
// por sí sola, porque la diferencia en euros siempre vale 0.
func TestEvaluar_PrecioCero_NoDisparaLimiteEnEuros(t *testing.T) {
	acum := entity.AcumuladoDiario{Unidades: decimal.Zero, Euros: dec("99.99")}
	lim := entity.LimitesOperario{LimiteEuros: dec("100"), LimiteUnidades: decimal.Zero}

	d := limites.Evaluar(acum, lim, dec("100000"), decimal.Zero)

	assert.False(t, d.EurosExcedidos, "con precio 0 la diferencia en euros es 0 y no puede exceder")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de EsSignificativa: el épsilon de 0.01 marca cuándo una diferencia
// cuenta para la acumulación.
// ──────────────────────────────────────────────────────────────────────────────

func TestEsSignificativa_Umbral(t *testing.T) {
	casos := []struct {
		dif      string
		esperado bool
	}{
		{"0", false},
		{"0.005", false},
		{"-0.005", false},
		{"0.009999", false},
		{"0.01", true}, // el épsilon mismo ya cuenta
		{"-0.01", true},
		{"1", true},
		{"-3.5", true},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, limites.EsSignificativa(dec(c.dif)),
			"diferencia %s", c.dif)
	}
}
