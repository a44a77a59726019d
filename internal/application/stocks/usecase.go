// Package stocks expone la consulta de stock disponible: una llamada al ERP,
// filtrado en memoria con el filtro del usuario y agrupación por artículo.
package stocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/internal/domain/filtro"
)

// UseCase fachada de consulta de stock.
type UseCase struct {
	stocks ports.ServicioStocks
}

// New construye el caso de uso.
func New(stocks ports.ServicioStocks) *UseCase {
	return &UseCase{stocks: stocks}
}

// Consultar pide el stock al ERP con los criterios básicos, aplica el filtro
// en memoria y agrupa por artículo con el total por grupo. El orden de los
// grupos sigue la primera aparición de cada artículo en la respuesta.
func (uc *UseCase) Consultar(ctx context.Context, op entity.Contexto, consulta ports.ConsultaStock, f filtro.Filtro) ([]dto.GrupoArticuloDTO, error) {
	filas, err := uc.stocks.StockDisponible(ctx, op.Empresa, consulta)
	if err != nil {
		return nil, err
	}
	filas = filtro.Aplicar(f, filas)

	indice := make(map[string]int)
	grupos := make([]dto.GrupoArticuloDTO, 0)
	for _, fila := range filas {
		i, ok := indice[fila.CodigoArticulo]
		if !ok {
			i = len(grupos)
			indice[fila.CodigoArticulo] = i
			grupos = append(grupos, dto.GrupoArticuloDTO{
				CodigoArticulo: fila.CodigoArticulo,
				Descripcion:    fila.Descripcion,
				Total:          decimal.Zero,
			})
		}
		grupos[i].Total = grupos[i].Total.Add(fila.Cantidad)
		grupos[i].Filas = append(grupos[i].Filas, dto.StockFilaDTO{
			CodigoArticulo: fila.CodigoArticulo,
			Descripcion:    fila.Descripcion,
			Almacen:        fila.Almacen,
			Ubicacion:      fila.Ubicacion,
			Lote:           fila.Lote,
			FechaCaducidad: fila.FechaCaducidad,
			Cantidad:       fila.Cantidad,
			PrecioUnitario: fila.PrecioUnitario,
		})
	}
	return grupos, nil
}
