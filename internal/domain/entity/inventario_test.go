package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// Las transiciones de estado solo avanzan: ABIERTO → CONTEO → CONSOLIDADO → CERRADO.
func TestEstadoInventario_SoloAvanza(t *testing.T) {
	assert.True(t, entity.EstadoAbierto.PuedeTransicionar(entity.EstadoConteo))
	assert.True(t, entity.EstadoConteo.PuedeTransicionar(entity.EstadoConsolidado))
	assert.True(t, entity.EstadoConsolidado.PuedeTransicionar(entity.EstadoCerrado))

	// Saltos hacia delante también valen.
	assert.True(t, entity.EstadoAbierto.PuedeTransicionar(entity.EstadoCerrado))
}

func TestEstadoInventario_NoRetrocede(t *testing.T) {
	assert.False(t, entity.EstadoCerrado.PuedeTransicionar(entity.EstadoConsolidado),
		"un inventario cerrado no se reabre")
	assert.False(t, entity.EstadoConsolidado.PuedeTransicionar(entity.EstadoConteo))
	assert.False(t, entity.EstadoConteo.PuedeTransicionar(entity.EstadoAbierto))
}

func TestEstadoInventario_MismoEstado_NoEsTransicion(t *testing.T) {
	assert.False(t, entity.EstadoConteo.PuedeTransicionar(entity.EstadoConteo))
}

func TestEstadoInventario_EstadoDesconocido(t *testing.T) {
	assert.False(t, entity.EstadoAbierto.PuedeTransicionar(entity.EstadoInventario("LIMBO")))
	assert.False(t, entity.EstadoInventario("LIMBO").PuedeTransicionar(entity.EstadoCerrado))
}
