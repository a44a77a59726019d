package erp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// Verificación en tiempo de compilación de los puertos de consulta.
var (
	_ ports.ServicioStocks     = (*Client)(nil)
	_ ports.ServicioAlmacenes  = (*Client)(nil)
	_ ports.ServicioPrecios    = (*Client)(nil)
	_ ports.ServicioAcumulados = (*Client)(nil)
	_ ports.ServicioLimites    = (*Client)(nil)
)

type stockFilaWire struct {
	CodigoArticulo string           `json:"codigo_articulo"`
	Descripcion    string           `json:"descripcion"`
	Almacen        string           `json:"almacen"`
	Ubicacion      string           `json:"ubicacion"`
	Lote           string           `json:"lote"`
	FechaCaducidad *time.Time       `json:"fecha_caducidad"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
}

// StockDisponible implementa ports.ServicioStocks.
func (c *Client) StockDisponible(ctx context.Context, empresa string, consulta ports.ConsultaStock) ([]entity.StockDisponible, error) {
	q := url.Values{}
	q.Set("empresa", empresa)
	setIf(q, "articulo", consulta.CodigoArticulo)
	setIf(q, "lote", consulta.Lote)
	setIf(q, "almacen", consulta.Almacen)
	setIf(q, "ubicacion", consulta.Ubicacion)
	setIf(q, "descripcion", consulta.Descripcion)

	var filas []stockFilaWire
	if err := c.doJSON(ctx, http.MethodGet, "/stocks", q, nil, &filas); err != nil {
		return nil, err
	}
	out := make([]entity.StockDisponible, 0, len(filas))
	for _, f := range filas {
		out = append(out, entity.StockDisponible{
			CodigoArticulo: f.CodigoArticulo,
			Descripcion:    f.Descripcion,
			Almacen:        f.Almacen,
			Ubicacion:      f.Ubicacion,
			Lote:           f.Lote,
			FechaCaducidad: f.FechaCaducidad,
			Cantidad:       f.Cantidad,
			PrecioUnitario: f.PrecioUnitario,
		})
	}
	return out, nil
}

type almacenWire struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// AlmacenesAutorizados implementa ports.ServicioAlmacenes.
func (c *Client) AlmacenesAutorizados(ctx context.Context, empresa, centro string, codigosExplicitos []string) ([]entity.Almacen, error) {
	q := url.Values{}
	q.Set("empresa", empresa)
	setIf(q, "centro", centro)
	for _, cod := range codigosExplicitos {
		q.Add("codigo", cod)
	}
	var almacenes []almacenWire
	if err := c.doJSON(ctx, http.MethodGet, "/almacenes/autorizados", q, nil, &almacenes); err != nil {
		return nil, err
	}
	out := make([]entity.Almacen, 0, len(almacenes))
	for _, a := range almacenes {
		out = append(out, entity.Almacen{Codigo: a.Codigo, Nombre: a.Nombre})
	}
	return out, nil
}

// PrecioUnitario implementa ports.ServicioPrecios.
func (c *Client) PrecioUnitario(ctx context.Context, empresa, codigoArticulo, almacen string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("empresa", empresa)
	q.Set("articulo", codigoArticulo)
	setIf(q, "almacen", almacen)
	var resp struct {
		Precio decimal.Decimal `json:"precio"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/tarifas/precio-unitario", q, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Precio, nil
}

// AcumuladoDiario implementa ports.ServicioAcumulados.
func (c *Client) AcumuladoDiario(ctx context.Context, idOperario int64, codigoArticulo, excluirInventario string) (entity.AcumuladoDiario, error) {
	q := url.Values{}
	q.Set("operario", fmt.Sprintf("%d", idOperario))
	q.Set("articulo", codigoArticulo)
	setIf(q, "excluir_inventario", excluirInventario)
	var resp struct {
		Unidades decimal.Decimal `json:"unidades"`
		Euros    decimal.Decimal `json:"euros"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/operarios/acumulado-diario", q, nil, &resp); err != nil {
		return entity.AcumuladoDiario{}, err
	}
	return entity.AcumuladoDiario{Unidades: resp.Unidades, Euros: resp.Euros}, nil
}

// LimitesOperario implementa ports.ServicioLimites.
func (c *Client) LimitesOperario(ctx context.Context, idOperario int64) (entity.LimitesOperario, error) {
	var resp struct {
		LimiteEuros    decimal.Decimal `json:"limite_euros"`
		LimiteUnidades decimal.Decimal `json:"limite_unidades"`
	}
	path := fmt.Sprintf("/operarios/%d/limites", idOperario)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return entity.LimitesOperario{}, err
	}
	return entity.LimitesOperario{LimiteEuros: resp.LimiteEuros, LimiteUnidades: resp.LimiteUnidades}, nil
}

func setIf(q url.Values, clave, valor string) {
	if valor != "" {
		q.Set(clave, valor)
	}
}
