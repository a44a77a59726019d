package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

func lineaValida() entity.LineaTraspaso {
	return entity.LineaTraspaso{
		CodigoArticulo:     "ART-001",
		Cantidad:           decimal.NewFromInt(5),
		AlmacenDestino:     "ALM-02",
		IDOperarioAsignado: 42,
	}
}

func TestLineaTraspaso_Valida(t *testing.T) {
	assert.True(t, lineaValida().Valida())
}

func TestLineaTraspaso_Invalida(t *testing.T) {
	casos := map[string]func(*entity.LineaTraspaso){
		"sin artículo":         func(l *entity.LineaTraspaso) { l.CodigoArticulo = "" },
		"cantidad cero":        func(l *entity.LineaTraspaso) { l.Cantidad = decimal.Zero },
		"cantidad negativa":    func(l *entity.LineaTraspaso) { l.Cantidad = decimal.NewFromInt(-1) },
		"sin almacén destino":  func(l *entity.LineaTraspaso) { l.AlmacenDestino = "" },
		"sin operario (id 0)":  func(l *entity.LineaTraspaso) { l.IDOperarioAsignado = 0 },
		"operario id negativo": func(l *entity.LineaTraspaso) { l.IDOperarioAsignado = -1 },
	}
	for nombre, romper := range casos {
		l := lineaValida()
		romper(&l)
		assert.False(t, l.Valida(), nombre)
	}
}

func TestOrdenTraspaso_PuedeCrearse(t *testing.T) {
	orden := entity.OrdenTraspaso{Lineas: []entity.LineaTraspaso{lineaValida(), lineaValida()}}
	assert.True(t, orden.PuedeCrearse())
}

func TestOrdenTraspaso_SinLineas_NoPuedeCrearse(t *testing.T) {
	assert.False(t, entity.OrdenTraspaso{}.PuedeCrearse())
}

// Basta una línea inválida para bloquear la orden completa.
func TestOrdenTraspaso_UnaLineaInvalida_BloqueaLaOrden(t *testing.T) {
	mala := lineaValida()
	mala.IDOperarioAsignado = 0
	orden := entity.OrdenTraspaso{Lineas: []entity.LineaTraspaso{lineaValida(), mala}}
	assert.False(t, orden.PuedeCrearse())
}
