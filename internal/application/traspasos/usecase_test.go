package traspasos_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/application/traspasos"
	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de puertos
// ──────────────────────────────────────────────────────────────────────────────

type traspasosMock struct {
	ordenes []entity.OrdenTraspaso

	creada         entity.OrdenTraspaso
	llamadasCrear  int
	actualizada    *entity.LineaTraspaso
	canceladaLinea int
}

func (m *traspasosMock) CrearOrden(ctx context.Context, orden entity.OrdenTraspaso) (entity.OrdenTraspaso, error) {
	m.llamadasCrear++
	m.creada = orden
	return orden, nil
}

func (m *traspasosMock) ActualizarLinea(ctx context.Context, idOrden string, linea entity.LineaTraspaso) error {
	m.actualizada = &linea
	return nil
}

func (m *traspasosMock) CancelarLinea(ctx context.Context, idOrden string, numLinea int) error {
	m.canceladaLinea = numLinea
	return nil
}

func (m *traspasosMock) ListarOrdenes(ctx context.Context, empresa string) ([]entity.OrdenTraspaso, error) {
	return m.ordenes, nil
}

type stocksMock struct {
	filas []entity.StockDisponible
}

func (m *stocksMock) StockDisponible(ctx context.Context, empresa string, consulta ports.ConsultaStock) ([]entity.StockDisponible, error) {
	out := make([]entity.StockDisponible, 0, len(m.filas))
	for _, f := range m.filas {
		if consulta.CodigoArticulo == "" || f.CodigoArticulo == consulta.CodigoArticulo {
			out = append(out, f)
		}
	}
	return out, nil
}

type almacenesMock struct {
	autorizados []entity.Almacen
}

func (m *almacenesMock) AlmacenesAutorizados(ctx context.Context, empresa, centro string, codigos []string) ([]entity.Almacen, error) {
	return m.autorizados, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var testOperario = entity.Contexto{IDOperario: 7, Empresa: "EMP1", Rol: "operario"}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func lineaReq(articulo string, cantidad string) dto.LineaTraspasoRequest {
	return dto.LineaTraspasoRequest{
		CodigoArticulo:     articulo,
		Cantidad:           dec(cantidad),
		AlmacenOrigen:      "ALM-01",
		AlmacenDestino:     "ALM-02",
		IDOperarioAsignado: 42,
	}
}

func armarUseCase(filas []entity.StockDisponible, autorizados []entity.Almacen) (*traspasos.UseCase, *traspasosMock) {
	tras := &traspasosMock{}
	uc := traspasos.New(tras, &stocksMock{filas: filas}, &almacenesMock{autorizados: autorizados}, testLogger())
	return uc, tras
}

func filaStock(articulo, almacen, cantidad string) entity.StockDisponible {
	return entity.StockDisponible{CodigoArticulo: articulo, Almacen: almacen, Cantidad: dec(cantidad)}
}

// ──────────────────────────────────────────────────────────────────────────────
// PuedeCrearOrden (habilitación del envío)
// ──────────────────────────────────────────────────────────────────────────────

func TestPuedeCrearOrden_TodasLasLineasCompletas(t *testing.T) {
	uc, _ := armarUseCase(nil, nil)

	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{lineaReq("ART-001", "5")}}
	assert.True(t, uc.PuedeCrearOrden(req))
}

func TestPuedeCrearOrden_SinLineas(t *testing.T) {
	uc, _ := armarUseCase(nil, nil)
	assert.False(t, uc.PuedeCrearOrden(dto.CrearOrdenRequest{}))
}

// Una línea sin operario asignado deshabilita el envío de toda la orden.
func TestPuedeCrearOrden_LineaSinOperario(t *testing.T) {
	uc, _ := armarUseCase(nil, nil)

	mala := lineaReq("ART-002", "3")
	mala.IDOperarioAsignado = 0
	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{lineaReq("ART-001", "5"), mala}}

	assert.False(t, uc.PuedeCrearOrden(req))
}

// ──────────────────────────────────────────────────────────────────────────────
// CrearOrden
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearOrden_ConStockSuficiente_Crea(t *testing.T) {
	uc, tras := armarUseCase(
		[]entity.StockDisponible{filaStock("ART-001", "ALM-01", "40"), filaStock("ART-001", "ALM-03", "20")},
		[]entity.Almacen{{Codigo: "ALM-01"}, {Codigo: "ALM-03"}},
	)

	req := dto.CrearOrdenRequest{
		Centro: "C1",
		Lineas: []dto.LineaTraspasoRequest{lineaReq("ART-001", "50")},
	}
	orden, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.NoError(t, err, "40 + 20 = 60 disponibles cubren las 50 solicitadas")
	assert.Equal(t, 1, tras.llamadasCrear)
	assert.NotEmpty(t, orden.ID)
	assert.Equal(t, testOperario.IDOperario, orden.CreadoPor)
	require.Len(t, orden.Lineas, 1)
	assert.Equal(t, 1, orden.Lineas[0].NumLinea)
	assert.Equal(t, entity.LineaAsignada, orden.Lineas[0].Estado, "con operario asignado la línea nace ASIGNADA")
}

// Déficit de stock: se rechaza el envío completo sin llamar al ERP.
func TestCrearOrden_StockInsuficiente_RechazaSinCrear(t *testing.T) {
	uc, tras := armarUseCase(
		[]entity.StockDisponible{filaStock("ART-001", "ALM-01", "40")},
		[]entity.Almacen{{Codigo: "ALM-01"}},
	)

	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{lineaReq("ART-001", "50")}}
	_, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Contains(t, err.Error(), "ART-001")
	assert.Zero(t, tras.llamadasCrear, "con déficit no debe crearse nada: todo o nada")
}

// El stock de almacenes no autorizados no cuenta para la suficiencia.
func TestCrearOrden_AlmacenNoAutorizado_NoCuenta(t *testing.T) {
	uc, tras := armarUseCase(
		[]entity.StockDisponible{
			filaStock("ART-001", "ALM-01", "10"),
			filaStock("ART-001", "ALM-99", "1000"), // no autorizado
		},
		[]entity.Almacen{{Codigo: "ALM-01"}},
	)

	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{lineaReq("ART-001", "50")}}
	_, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Zero(t, tras.llamadasCrear)
}

// Varias líneas del mismo artículo compiten por el mismo disponible.
func TestCrearOrden_LineasDelMismoArticulo_SeSuman(t *testing.T) {
	uc, tras := armarUseCase(
		[]entity.StockDisponible{filaStock("ART-001", "ALM-01", "40")},
		[]entity.Almacen{{Codigo: "ALM-01"}},
	)

	// 25 + 25 = 50 > 40 aunque cada línea por separado cabría.
	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{
		lineaReq("ART-001", "25"),
		lineaReq("ART-001", "25"),
	}}
	_, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Zero(t, tras.llamadasCrear)
}

func TestCrearOrden_LineaIncompleta_EntradaInvalida(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)

	mala := lineaReq("ART-001", "5")
	mala.IDOperarioAsignado = 0
	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{mala}}
	_, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Zero(t, tras.llamadasCrear)
}

func TestCrearOrden_SinLineas_EntradaInvalida(t *testing.T) {
	uc, _ := armarUseCase(nil, nil)

	_, err := uc.CrearOrden(context.Background(), testOperario, dto.CrearOrdenRequest{})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Los números de línea se asignan secuencialmente desde 1.
func TestCrearOrden_NumerosDeLineaSecuenciales(t *testing.T) {
	uc, _ := armarUseCase(
		[]entity.StockDisponible{filaStock("ART-001", "ALM-01", "100"), filaStock("ART-002", "ALM-01", "100")},
		[]entity.Almacen{{Codigo: "ALM-01"}},
	)

	req := dto.CrearOrdenRequest{Lineas: []dto.LineaTraspasoRequest{
		lineaReq("ART-001", "5"),
		lineaReq("ART-002", "3"),
	}}
	orden, err := uc.CrearOrden(context.Background(), testOperario, req)

	require.NoError(t, err)
	require.Len(t, orden.Lineas, 2)
	assert.Equal(t, 1, orden.Lineas[0].NumLinea)
	assert.Equal(t, 2, orden.Lineas[1].NumLinea)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarLinea / CancelarLinea
// ──────────────────────────────────────────────────────────────────────────────

func ordenConLinea(estado entity.EstadoLineaTraspaso) entity.OrdenTraspaso {
	return entity.OrdenTraspaso{
		ID:      "ORD-1",
		Empresa: "EMP1",
		Lineas: []entity.LineaTraspaso{{
			NumLinea:           1,
			CodigoArticulo:     "ART-001",
			Cantidad:           dec("5"),
			AlmacenDestino:     "ALM-02",
			IDOperarioAsignado: 42,
			Estado:             estado,
		}},
	}
}

func TestActualizarLinea_CambiaCantidad(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaPendiente)}

	nueva := dec("9")
	err := uc.ActualizarLinea(context.Background(), testOperario, "ORD-1", 1, dto.ActualizarLineaRequest{Cantidad: &nueva})

	require.NoError(t, err)
	require.NotNil(t, tras.actualizada)
	assert.True(t, tras.actualizada.Cantidad.Equal(dec("9")))
}

func TestActualizarLinea_ReasignarOperario_PasaAAsignada(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaPendiente)}

	operario := int64(99)
	err := uc.ActualizarLinea(context.Background(), testOperario, "ORD-1", 1, dto.ActualizarLineaRequest{IDOperarioAsignado: &operario})

	require.NoError(t, err)
	require.NotNil(t, tras.actualizada)
	assert.Equal(t, int64(99), tras.actualizada.IDOperarioAsignado)
	assert.Equal(t, entity.LineaAsignada, tras.actualizada.Estado)
}

func TestActualizarLinea_CantidadNoPositiva_Rechaza(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaPendiente)}

	cero := decimal.Zero
	err := uc.ActualizarLinea(context.Background(), testOperario, "ORD-1", 1, dto.ActualizarLineaRequest{Cantidad: &cero})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestActualizarLinea_LineaCompletada_Conflicto(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaCompletada)}

	nueva := dec("9")
	err := uc.ActualizarLinea(context.Background(), testOperario, "ORD-1", 1, dto.ActualizarLineaRequest{Cantidad: &nueva})

	assert.ErrorIs(t, err, domain.ErrConflicto)
}

func TestActualizarLinea_LineaInexistente(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaPendiente)}

	nueva := dec("9")
	err := uc.ActualizarLinea(context.Background(), testOperario, "ORD-1", 99, dto.ActualizarLineaRequest{Cantidad: &nueva})

	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestCancelarLinea_Pendiente(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaPendiente)}

	require.NoError(t, uc.CancelarLinea(context.Background(), testOperario, "ORD-1", 1))
	assert.Equal(t, 1, tras.canceladaLinea)
}

func TestCancelarLinea_Completada_Conflicto(t *testing.T) {
	uc, tras := armarUseCase(nil, nil)
	tras.ordenes = []entity.OrdenTraspaso{ordenConLinea(entity.LineaCompletada)}

	err := uc.CancelarLinea(context.Background(), testOperario, "ORD-1", 1)

	assert.ErrorIs(t, err, domain.ErrConflicto)
}
