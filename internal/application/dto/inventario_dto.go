package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearInventarioRequest body para POST /api/inventarios.
type CrearInventarioRequest struct {
	Almacen string `json:"almacen" validate:"required"`
	Alcance string `json:"alcance" validate:"required,oneof=TOTAL PARCIAL"`
}

// InventarioDTO cabecera de inventario para presentación.
type InventarioDTO struct {
	ID            string    `json:"id"`
	Almacen       string    `json:"almacen"`
	Alcance       string    `json:"alcance"`
	Estado        string    `json:"estado"`
	CreadoPor     int64     `json:"creado_por"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// LineaConteoDTO línea de conteo para presentación.
type LineaConteoDTO struct {
	NumLinea        int              `json:"num_linea"`
	CodigoArticulo  string           `json:"codigo_articulo"`
	Descripcion     string           `json:"descripcion"`
	Ubicacion       string           `json:"ubicacion"`
	Lote            string           `json:"lote,omitempty"`
	FechaCaducidad  *time.Time       `json:"fecha_caducidad,omitempty"`
	StockActual     decimal.Decimal  `json:"stock_actual"`
	CantidadContada *decimal.Decimal `json:"cantidad_contada,omitempty"`
}

// ValidarLineaRequest body para validar el cambio de una línea de conteo.
// Cantidad admite texto libre (el teclado del terminal envía lo que el
// operario tecleó); la interpretación es tolerante.
type ValidarLineaRequest struct {
	Cantidad string `json:"cantidad" validate:"required"`
}

// ValidarLineaResponse resultado de validar un cambio de cantidad.
// Si el límite se excede, la línea queda revertida a la cantidad de la foto y
// CantidadAplicada refleja ese valor.
type ValidarLineaResponse struct {
	Aceptada            bool            `json:"aceptada"`
	UnidadesExcedidas   bool            `json:"unidades_excedidas"`
	EurosExcedidos      bool            `json:"euros_excedidos"`
	CantidadAplicada    decimal.Decimal `json:"cantidad_aplicada"`
	ValorDiferencias    decimal.Decimal `json:"valor_diferencias"`
	UnidadesDiferencias decimal.Decimal `json:"unidades_diferencias"`
}

// LineaProblematicaDTO línea problemática para presentación.
// CantidadPropuesta es el stock vivo del sistema, prerrellenado para el
// operario; CantidadRecontada solo se informa cuando la línea ya se validó.
type LineaProblematicaDTO struct {
	CodigoArticulo    string           `json:"codigo_articulo"`
	Descripcion       string           `json:"descripcion"`
	Ubicacion         string           `json:"ubicacion"`
	Lote              string           `json:"lote,omitempty"`
	StockSnapshot     decimal.Decimal  `json:"stock_snapshot"`
	StockSistema      decimal.Decimal  `json:"stock_sistema"`
	CantidadPropuesta decimal.Decimal  `json:"cantidad_propuesta"`
	CantidadRecontada *decimal.Decimal `json:"cantidad_recontada,omitempty"`
}

// ValidarReconteoRequest body para validar el reconteo de una línea problemática.
type ValidarReconteoRequest struct {
	CodigoArticulo string `json:"codigo_articulo" validate:"required"`
	Ubicacion      string `json:"ubicacion" validate:"required"`
	Lote           string `json:"lote"`
	Cantidad       string `json:"cantidad" validate:"required"`
}

// ResultadoReconteoDTO resultado del guardado de reconteo + consolidación.
// Estados: CONSOLIDADO, CONSOLIDADO_CON_AVISOS, GUARDADO_SIN_CONSOLIDAR.
type ResultadoReconteoDTO struct {
	Estado string   `json:"estado"`
	Avisos []string `json:"avisos,omitempty"`
}
