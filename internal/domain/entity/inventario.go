package entity

import "time"

// AlcanceInventario indica si el inventario cubre todo el almacén o un subconjunto.
type AlcanceInventario string

const (
	AlcanceTotal   AlcanceInventario = "TOTAL"
	AlcanceParcial AlcanceInventario = "PARCIAL"
)

// EstadoInventario estados del ciclo de vida de un inventario.
// Las transiciones solo avanzan; un inventario cerrado no se reabre.
type EstadoInventario string

const (
	EstadoAbierto     EstadoInventario = "ABIERTO"
	EstadoConteo      EstadoInventario = "CONTEO"
	EstadoConsolidado EstadoInventario = "CONSOLIDADO"
	EstadoCerrado     EstadoInventario = "CERRADO"
)

// orden de los estados para validar transiciones hacia delante.
var ordenEstados = map[EstadoInventario]int{
	EstadoAbierto:     0,
	EstadoConteo:      1,
	EstadoConsolidado: 2,
	EstadoCerrado:     3,
}

// PuedeTransicionar indica si el estado puede avanzar al estado destino.
func (e EstadoInventario) PuedeTransicionar(a EstadoInventario) bool {
	desde, ok1 := ordenEstados[e]
	hasta, ok2 := ordenEstados[a]
	if !ok1 || !ok2 {
		return false
	}
	return hasta > desde
}

// Inventario cabecera de un inventario de almacén. Las líneas de conteo
// pertenecen en exclusiva a su cabecera.
type Inventario struct {
	ID            string
	Empresa       string
	Almacen       string
	Alcance       AlcanceInventario
	Estado        EstadoInventario
	CreadoPor     int64
	FechaCreacion time.Time
}
