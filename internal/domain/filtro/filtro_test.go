package filtro_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/filtro"
)

func fila(articulo, ubicacion string) entity.StockDisponible {
	return entity.StockDisponible{
		CodigoArticulo: articulo,
		Ubicacion:      ubicacion,
		Cantidad:       decimal.NewFromInt(1),
	}
}

// FiltroUbicacion compara segmento a segmento la ubicación codificada
// "pasillo-estantería-altura-posición"; los campos vacíos aceptan cualquier valor.
func TestFiltroUbicacion_SegmentosParciales(t *testing.T) {
	f := filtro.FiltroUbicacion{Pasillo: "012", Altura: "02"}

	assert.True(t, f.Coincide(fila("A1", "012-003-02-01")), "pasillo y altura coinciden")
	assert.True(t, f.Coincide(fila("A1", "012-999-02-07")), "la estantería no se filtra")
	assert.False(t, f.Coincide(fila("A1", "013-003-02-01")), "pasillo distinto")
	assert.False(t, f.Coincide(fila("A1", "012-003-03-01")), "altura distinta")
}

func TestFiltroUbicacion_SinCampos_AceptaTodo(t *testing.T) {
	f := filtro.FiltroUbicacion{}
	assert.True(t, f.Coincide(fila("A1", "001-001-01-01")))
	assert.True(t, f.Coincide(fila("A1", "")))
}

// Una ubicación con menos segmentos que los pedidos no coincide.
func TestFiltroUbicacion_UbicacionCorta_NoCoincide(t *testing.T) {
	f := filtro.FiltroUbicacion{Posicion: "01"}
	assert.False(t, f.Coincide(fila("A1", "012-003")), "no hay cuarto segmento que comparar")
}

// UbicacionDirecta ignora los segmentos y compara la ubicación completa.
func TestFiltroUbicacion_Directa_IgnoraSegmentos(t *testing.T) {
	f := filtro.FiltroUbicacion{
		Pasillo:          "999", // se ignora
		UbicacionDirecta: "012-003-02-01",
	}
	assert.True(t, f.Coincide(fila("A1", "012-003-02-01")))
	assert.False(t, f.Coincide(fila("A1", "012-003-02-02")))
}

func TestFiltroUbicacion_NoDistingueMayusculas(t *testing.T) {
	f := filtro.FiltroUbicacion{Pasillo: "a12"}
	assert.True(t, f.Coincide(fila("A1", "A12-001-01-01")))
}

func TestFiltroArticulo_CodigoExacto(t *testing.T) {
	f := filtro.FiltroArticulo{Codigo: "ART-001"}
	assert.True(t, f.Coincide(fila("ART-001", "")))
	assert.True(t, f.Coincide(fila("art-001", "")), "el código no distingue mayúsculas")
	assert.False(t, f.Coincide(fila("ART-002", "")))
}

func TestAplicar_FiltroNil_DevuelveTodas(t *testing.T) {
	filas := []entity.StockDisponible{fila("A", ""), fila("B", "")}
	assert.Len(t, filtro.Aplicar(nil, filas), 2)
}

func TestAplicar_FiltraFilas(t *testing.T) {
	filas := []entity.StockDisponible{
		fila("A", "012-001-01-01"),
		fila("B", "013-001-01-01"),
		fila("C", "012-002-01-01"),
	}
	out := filtro.Aplicar(filtro.FiltroUbicacion{Pasillo: "012"}, filas)

	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].CodigoArticulo)
	assert.Equal(t, "C", out[1].CodigoArticulo)
}
