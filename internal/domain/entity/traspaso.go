package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoLineaTraspaso estados de una línea de traspaso.
type EstadoLineaTraspaso string

const (
	LineaPendiente  EstadoLineaTraspaso = "PENDIENTE"
	LineaAsignada   EstadoLineaTraspaso = "ASIGNADA"
	LineaCancelada  EstadoLineaTraspaso = "CANCELADA"
	LineaCompletada EstadoLineaTraspaso = "COMPLETADA"
)

// LineaTraspaso línea de una orden de traspaso entre almacenes.
type LineaTraspaso struct {
	NumLinea           int
	CodigoArticulo     string
	Cantidad           decimal.Decimal
	AlmacenOrigen      string
	UbicacionOrigen    string
	AlmacenDestino     string
	UbicacionDestino   string
	IDOperarioAsignado int64
	Estado             EstadoLineaTraspaso
}

// Valida indica si la línea cumple los requisitos mínimos para enviarse:
// artículo informado, cantidad positiva, almacén destino informado y
// operario asignado (> 0).
func (l LineaTraspaso) Valida() bool {
	return l.CodigoArticulo != "" &&
		l.Cantidad.GreaterThan(decimal.Zero) &&
		l.AlmacenDestino != "" &&
		l.IDOperarioAsignado > 0
}

// OrdenTraspaso orden de traspaso multilínea.
type OrdenTraspaso struct {
	ID            string
	Empresa       string
	CreadoPor     int64
	FechaCreacion time.Time
	Lineas        []LineaTraspaso
}

// PuedeCrearse indica si la orden puede enviarse: al menos una línea y todas válidas.
func (o OrdenTraspaso) PuedeCrearse() bool {
	if len(o.Lineas) == 0 {
		return false
	}
	for _, l := range o.Lineas {
		if !l.Valida() {
			return false
		}
	}
	return true
}
