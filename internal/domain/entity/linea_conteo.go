package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineaConteo línea de un inventario en curso. StockActual es la foto del stock
// en el momento de crear el inventario; CantidadContada queda a nil hasta que
// el operario introduce un valor.
type LineaConteo struct {
	IDInventario         string
	NumLinea             int
	CodigoArticulo       string
	Descripcion          string
	Ubicacion            string
	Lote                 string
	FechaCaducidad       *time.Time
	StockActual          decimal.Decimal
	CantidadContada      *decimal.Decimal
	CantidadContadaTexto string
}

// CantidadEfectiva devuelve la cantidad contada si existe; si no, intenta
// interpretar el texto libre introducido por el operario; si tampoco es
// interpretable, devuelve el stock de la foto (sin cambio). Nunca falla.
func (l *LineaConteo) CantidadEfectiva() decimal.Decimal {
	if l.CantidadContada != nil {
		return *l.CantidadContada
	}
	texto := strings.TrimSpace(strings.ReplaceAll(l.CantidadContadaTexto, ",", "."))
	if texto != "" {
		if d, err := decimal.NewFromString(texto); err == nil {
			return d
		}
	}
	return l.StockActual
}

// Diferencia devuelve cantidad efectiva menos stock de la foto (con signo).
func (l *LineaConteo) Diferencia() decimal.Decimal {
	return l.CantidadEfectiva().Sub(l.StockActual)
}
