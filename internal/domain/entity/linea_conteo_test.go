package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// CantidadEfectiva resuelve en cascada: cantidad contada, texto libre
// interpretable, y como último recurso la foto. Nunca falla.

func TestCantidadEfectiva_CantidadContadaTienePrioridad(t *testing.T) {
	contada := decimal.NewFromInt(7)
	l := entity.LineaConteo{
		StockActual:          decimal.NewFromInt(10),
		CantidadContada:      &contada,
		CantidadContadaTexto: "999", // se ignora si hay cantidad contada
	}
	assert.True(t, l.CantidadEfectiva().Equal(decimal.NewFromInt(7)))
}

func TestCantidadEfectiva_TextoConComaDecimal(t *testing.T) {
	l := entity.LineaConteo{
		StockActual:          decimal.NewFromInt(10),
		CantidadContadaTexto: "12,5",
	}
	assert.True(t, l.CantidadEfectiva().Equal(decimal.RequireFromString("12.5")),
		"la coma decimal del teclado numérico debe interpretarse como punto")
}

func TestCantidadEfectiva_TextoNoInterpretable_DevuelveFoto(t *testing.T) {
	l := entity.LineaConteo{
		StockActual:          decimal.NewFromInt(10),
		CantidadContadaTexto: "doce",
	}
	assert.True(t, l.CantidadEfectiva().Equal(decimal.NewFromInt(10)),
		"texto no numérico equivale a sin cambio")
}

func TestCantidadEfectiva_SinNada_DevuelveFoto(t *testing.T) {
	l := entity.LineaConteo{StockActual: decimal.NewFromInt(10)}
	assert.True(t, l.CantidadEfectiva().Equal(decimal.NewFromInt(10)))
}

func TestDiferencia_ConSigno(t *testing.T) {
	contada := decimal.NewFromInt(7)
	l := entity.LineaConteo{
		StockActual:     decimal.NewFromInt(10),
		CantidadContada: &contada,
	}
	assert.True(t, l.Diferencia().Equal(decimal.NewFromInt(-3)),
		"contar menos que la foto da diferencia negativa")
}

func TestDiferencia_SinConteo_EsCero(t *testing.T) {
	l := entity.LineaConteo{StockActual: decimal.NewFromInt(10)}
	assert.True(t, l.Diferencia().IsZero())
}
