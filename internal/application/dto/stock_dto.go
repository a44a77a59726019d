package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsultaStockRequest query params para GET /api/stocks.
// Los campos de ubicación alimentan el filtro en memoria; el resto viaja al ERP.
type ConsultaStockRequest struct {
	CodigoArticulo   string `query:"articulo"`
	Lote             string `query:"lote"`
	Almacen          string `query:"almacen"`
	Descripcion      string `query:"descripcion"`
	Pasillo          string `query:"pasillo"`
	Estanteria       string `query:"estanteria"`
	Altura           string `query:"altura"`
	Posicion         string `query:"posicion"`
	UbicacionDirecta string `query:"ubicacion"`
}

// StockFilaDTO fila de stock para presentación.
type StockFilaDTO struct {
	CodigoArticulo string           `json:"codigo_articulo"`
	Descripcion    string           `json:"descripcion"`
	Almacen        string           `json:"almacen"`
	Ubicacion      string           `json:"ubicacion"`
	Lote           string           `json:"lote,omitempty"`
	FechaCaducidad *time.Time       `json:"fecha_caducidad,omitempty"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// GrupoArticuloDTO filas de stock agrupadas por artículo con total.
type GrupoArticuloDTO struct {
	CodigoArticulo string          `json:"codigo_articulo"`
	Descripcion    string          `json:"descripcion"`
	Total          decimal.Decimal `json:"total"`
	Filas          []StockFilaDTO  `json:"filas"`
}
