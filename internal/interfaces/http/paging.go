package http

import "github.com/tu-usuario/sga-almacen/internal/application/dto"

// paginar aplica limit/offset en memoria sobre un listado ya resuelto.
func paginar[T any](items []T, p dto.PageRequest) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	fin := p.Offset + p.Limit
	if fin > len(items) {
		fin = len(items)
	}
	return items[p.Offset:fin]
}
