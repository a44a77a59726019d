package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaTraspasoRequest línea de una orden de traspaso a crear.
type LineaTraspasoRequest struct {
	CodigoArticulo     string          `json:"codigo_articulo" validate:"required"`
	Cantidad           decimal.Decimal `json:"cantidad" validate:"required"`
	AlmacenOrigen      string          `json:"almacen_origen"`
	UbicacionOrigen    string          `json:"ubicacion_origen"`
	AlmacenDestino     string          `json:"almacen_destino" validate:"required"`
	UbicacionDestino   string          `json:"ubicacion_destino"`
	IDOperarioAsignado int64           `json:"id_operario_asignado" validate:"required,gt=0"`
}

// CrearOrdenRequest body para POST /api/traspasos. Centro y CodigosAlmacen
// provienen del maestro de operario que ya conoce el cliente; determinan los
// almacenes autorizados sobre los que se comprueba la suficiencia de stock.
type CrearOrdenRequest struct {
	Centro         string                 `json:"centro"`
	CodigosAlmacen []string               `json:"codigos_almacen"`
	Lineas         []LineaTraspasoRequest `json:"lineas" validate:"required,min=1,dive"`
}

// LineaTraspasoDTO línea de traspaso para presentación.
type LineaTraspasoDTO struct {
	NumLinea           int             `json:"num_linea"`
	CodigoArticulo     string          `json:"codigo_articulo"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	AlmacenOrigen      string          `json:"almacen_origen,omitempty"`
	UbicacionOrigen    string          `json:"ubicacion_origen,omitempty"`
	AlmacenDestino     string          `json:"almacen_destino"`
	UbicacionDestino   string          `json:"ubicacion_destino,omitempty"`
	IDOperarioAsignado int64           `json:"id_operario_asignado"`
	Estado             string          `json:"estado"`
}

// OrdenTraspasoDTO orden de traspaso para presentación.
type OrdenTraspasoDTO struct {
	ID            string             `json:"id"`
	CreadoPor     int64              `json:"creado_por"`
	FechaCreacion time.Time          `json:"fecha_creacion"`
	Lineas        []LineaTraspasoDTO `json:"lineas"`
}

// ActualizarLineaRequest body para PUT de una línea de traspaso.
type ActualizarLineaRequest struct {
	Cantidad           *decimal.Decimal `json:"cantidad,omitempty"`
	IDOperarioAsignado *int64           `json:"id_operario_asignado,omitempty"`
}
