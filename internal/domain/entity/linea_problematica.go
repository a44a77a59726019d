package entity

import "github.com/shopspring/decimal"

// LineaProblematica línea cuyo stock vivo divergió de la foto tomada al crear
// el inventario. Se materializa durante la consolidación y desaparece una vez
// guardado el reconteo.
type LineaProblematica struct {
	IDInventario   string
	CodigoArticulo string
	Descripcion    string
	Ubicacion      string
	Lote           string
	// StockSnapshot cantidad en la foto de creación del inventario.
	StockSnapshot decimal.Decimal
	// StockSistema cantidad viva del sistema en el momento de consolidar.
	StockSistema decimal.Decimal
	// CantidadRecontada propuesta del operario; nil = sin recontar.
	CantidadRecontada *decimal.Decimal
}

// Diferencia devuelve la diferencia del reconteo frente al stock vivo del
// sistema, que es la referencia en la reconciliación (no la foto).
func (l *LineaProblematica) Diferencia() decimal.Decimal {
	if l.CantidadRecontada == nil {
		return decimal.Zero
	}
	return l.CantidadRecontada.Sub(l.StockSistema)
}
