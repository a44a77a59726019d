// Package filtro define los filtros de consulta de stock como variante
// etiquetada (ubicación o artículo) en lugar de un mapa débilmente tipado.
package filtro

import (
	"strings"

	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// Filtro filtro en memoria sobre filas de stock. Implementaciones: FiltroUbicacion
// y FiltroArticulo. nil equivale a "sin filtro".
type Filtro interface {
	Coincide(fila entity.StockDisponible) bool
}

// FiltroUbicacion filtra por los segmentos de la ubicación codificada
// "pasillo-estantería-altura-posición" (ej. "012-003-02-01"). Un campo vacío
// acepta cualquier valor en ese segmento. UbicacionDirecta, si se informa,
// compara la ubicación completa e ignora los segmentos.
type FiltroUbicacion struct {
	Pasillo          string
	Estanteria       string
	Altura           string
	Posicion         string
	UbicacionDirecta string
}

// Coincide implementa Filtro.
func (f FiltroUbicacion) Coincide(fila entity.StockDisponible) bool {
	if f.UbicacionDirecta != "" {
		return strings.EqualFold(fila.Ubicacion, f.UbicacionDirecta)
	}
	seg := strings.Split(fila.Ubicacion, "-")
	quiere := []string{f.Pasillo, f.Estanteria, f.Altura, f.Posicion}
	for i, q := range quiere {
		if q == "" {
			continue
		}
		if i >= len(seg) || !strings.EqualFold(seg[i], q) {
			return false
		}
	}
	return true
}

// FiltroArticulo filtra por código de artículo exacto.
type FiltroArticulo struct {
	Codigo string
}

// Coincide implementa Filtro.
func (f FiltroArticulo) Coincide(fila entity.StockDisponible) bool {
	return strings.EqualFold(fila.CodigoArticulo, f.Codigo)
}

// Aplicar devuelve las filas que pasan el filtro. Con f == nil devuelve todas.
func Aplicar(f Filtro, filas []entity.StockDisponible) []entity.StockDisponible {
	if f == nil {
		return filas
	}
	out := make([]entity.StockDisponible, 0, len(filas))
	for _, fila := range filas {
		if f.Coincide(fila) {
			out = append(out, fila)
		}
	}
	return out
}
