package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDisponible fila de stock disponible tal como la devuelve el ERP.
type StockDisponible struct {
	CodigoArticulo string
	Descripcion    string
	Almacen        string
	Ubicacion      string
	Lote           string
	FechaCaducidad *time.Time
	Cantidad       decimal.Decimal
	// PrecioUnitario puede faltar en el maestro; nil = precio desconocido.
	PrecioUnitario *decimal.Decimal
}

// Almacen almacén autorizado para un operario.
type Almacen struct {
	Codigo string
	Nombre string
}
