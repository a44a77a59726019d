package conteo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

type clavePrecio struct {
	articulo string
	almacen  string
}

// cachePrecios cachea el precio unitario por (artículo, almacén) durante la
// vida de una sesión de conteo, para no repetir llamadas al ERP en cada
// validación de línea. Un fallo de tarifa se resuelve como precio 0 y también
// se cachea: el precio 0 nunca dispara por sí solo el límite en euros.
type cachePrecios struct {
	servicio ports.ServicioPrecios
	log      *logger.Logger
	precios  map[clavePrecio]decimal.Decimal
}

func newCachePrecios(servicio ports.ServicioPrecios, log *logger.Logger) *cachePrecios {
	return &cachePrecios{
		servicio: servicio,
		log:      log,
		precios:  make(map[clavePrecio]decimal.Decimal),
	}
}

// Precio devuelve el precio unitario cacheado o lo pide al ERP.
func (c *cachePrecios) Precio(ctx context.Context, empresa, articulo, almacen string) decimal.Decimal {
	clave := clavePrecio{articulo: articulo, almacen: almacen}
	if p, ok := c.precios[clave]; ok {
		return p
	}
	p, err := c.servicio.PrecioUnitario(ctx, empresa, articulo, almacen)
	if err != nil {
		c.log.Warn().Err(err).
			Str("articulo", articulo).
			Str("almacen", almacen).
			Msg("tarifa no disponible, se asume precio 0")
		p = decimal.Zero
	}
	c.precios[clave] = p
	return p
}
