package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrConflicto          = errors.New("conflicto con el estado actual")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
	ErrNadaQueGuardar     = errors.New("no hay líneas recontadas que guardar")
	ErrSesionNoAbierta    = errors.New("no hay sesión de conteo abierta para el inventario")
	ErrInventarioCerrado  = errors.New("el inventario ya está cerrado")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	ErrServicioRemoto     = errors.New("error del servicio remoto")
)
