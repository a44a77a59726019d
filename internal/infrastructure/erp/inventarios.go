package erp

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

var _ ports.ServicioInventarios = (*Client)(nil)

type inventarioWire struct {
	ID            string    `json:"id"`
	Empresa       string    `json:"empresa"`
	Almacen       string    `json:"almacen"`
	Alcance       string    `json:"alcance"`
	Estado        string    `json:"estado"`
	CreadoPor     int64     `json:"creado_por"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

func (w inventarioWire) aEntidad() entity.Inventario {
	return entity.Inventario{
		ID:            w.ID,
		Empresa:       w.Empresa,
		Almacen:       w.Almacen,
		Alcance:       entity.AlcanceInventario(w.Alcance),
		Estado:        entity.EstadoInventario(w.Estado),
		CreadoPor:     w.CreadoPor,
		FechaCreacion: w.FechaCreacion,
	}
}

type lineaConteoWire struct {
	NumLinea        int              `json:"num_linea"`
	CodigoArticulo  string           `json:"codigo_articulo"`
	Descripcion     string           `json:"descripcion"`
	Ubicacion       string           `json:"ubicacion"`
	Lote            string           `json:"lote"`
	FechaCaducidad  *time.Time       `json:"fecha_caducidad"`
	StockActual     decimal.Decimal  `json:"stock_actual"`
	CantidadContada *decimal.Decimal `json:"cantidad_contada"`
}

type lineaProblematicaWire struct {
	CodigoArticulo    string           `json:"codigo_articulo"`
	Descripcion       string           `json:"descripcion"`
	Ubicacion         string           `json:"ubicacion"`
	Lote              string           `json:"lote"`
	StockSnapshot     decimal.Decimal  `json:"stock_snapshot"`
	StockSistema      decimal.Decimal  `json:"stock_sistema"`
	CantidadRecontada *decimal.Decimal `json:"cantidad_recontada"`
}

// Crear implementa ports.ServicioInventarios.
func (c *Client) Crear(ctx context.Context, inv entity.Inventario) (entity.Inventario, error) {
	body := inventarioWire{
		Empresa:       inv.Empresa,
		Almacen:       inv.Almacen,
		Alcance:       string(inv.Alcance),
		Estado:        string(inv.Estado),
		CreadoPor:     inv.CreadoPor,
		FechaCreacion: inv.FechaCreacion,
	}
	var resp inventarioWire
	if err := c.doJSON(ctx, http.MethodPost, "/inventarios", nil, body, &resp); err != nil {
		return entity.Inventario{}, err
	}
	return resp.aEntidad(), nil
}

// Listar implementa ports.ServicioInventarios.
func (c *Client) Listar(ctx context.Context, empresa string) ([]entity.Inventario, error) {
	q := url.Values{}
	q.Set("empresa", empresa)
	var resp []inventarioWire
	if err := c.doJSON(ctx, http.MethodGet, "/inventarios", q, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.Inventario, 0, len(resp))
	for _, w := range resp {
		out = append(out, w.aEntidad())
	}
	return out, nil
}

// Obtener implementa ports.ServicioInventarios.
func (c *Client) Obtener(ctx context.Context, idInventario string) (entity.Inventario, error) {
	var resp inventarioWire
	if err := c.doJSON(ctx, http.MethodGet, "/inventarios/"+url.PathEscape(idInventario), nil, nil, &resp); err != nil {
		return entity.Inventario{}, err
	}
	return resp.aEntidad(), nil
}

// LineasConteo implementa ports.ServicioInventarios.
func (c *Client) LineasConteo(ctx context.Context, idInventario string) ([]entity.LineaConteo, error) {
	var resp []lineaConteoWire
	path := "/inventarios/" + url.PathEscape(idInventario) + "/lineas"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.LineaConteo, 0, len(resp))
	for _, w := range resp {
		out = append(out, entity.LineaConteo{
			IDInventario:    idInventario,
			NumLinea:        w.NumLinea,
			CodigoArticulo:  w.CodigoArticulo,
			Descripcion:     w.Descripcion,
			Ubicacion:       w.Ubicacion,
			Lote:            w.Lote,
			FechaCaducidad:  w.FechaCaducidad,
			StockActual:     w.StockActual,
			CantidadContada: w.CantidadContada,
		})
	}
	return out, nil
}

// LineasProblematicas implementa ports.ServicioInventarios.
func (c *Client) LineasProblematicas(ctx context.Context, idInventario string) ([]entity.LineaProblematica, error) {
	var resp []lineaProblematicaWire
	path := "/inventarios/" + url.PathEscape(idInventario) + "/lineas-problematicas"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.LineaProblematica, 0, len(resp))
	for _, w := range resp {
		out = append(out, entity.LineaProblematica{
			IDInventario:      idInventario,
			CodigoArticulo:    w.CodigoArticulo,
			Descripcion:       w.Descripcion,
			Ubicacion:         w.Ubicacion,
			Lote:              w.Lote,
			StockSnapshot:     w.StockSnapshot,
			StockSistema:      w.StockSistema,
			CantidadRecontada: w.CantidadRecontada,
		})
	}
	return out, nil
}

// GuardarConteo implementa ports.ServicioInventarios. Envía todas las líneas.
func (c *Client) GuardarConteo(ctx context.Context, idInventario string, lineas []entity.LineaConteo) error {
	body := make([]lineaConteoWire, 0, len(lineas))
	for _, l := range lineas {
		body = append(body, lineaConteoWire{
			NumLinea:        l.NumLinea,
			CodigoArticulo:  l.CodigoArticulo,
			Descripcion:     l.Descripcion,
			Ubicacion:       l.Ubicacion,
			Lote:            l.Lote,
			FechaCaducidad:  l.FechaCaducidad,
			StockActual:     l.StockActual,
			CantidadContada: l.CantidadContada,
		})
	}
	path := "/inventarios/" + url.PathEscape(idInventario) + "/conteo"
	return c.doJSON(ctx, http.MethodPost, path, nil, body, nil)
}

// GuardarReconteo implementa ports.ServicioInventarios.
func (c *Client) GuardarReconteo(ctx context.Context, idInventario string, lineas []entity.LineaProblematica) error {
	body := make([]lineaProblematicaWire, 0, len(lineas))
	for _, l := range lineas {
		body = append(body, lineaProblematicaWire{
			CodigoArticulo:    l.CodigoArticulo,
			Descripcion:       l.Descripcion,
			Ubicacion:         l.Ubicacion,
			Lote:              l.Lote,
			StockSnapshot:     l.StockSnapshot,
			StockSistema:      l.StockSistema,
			CantidadRecontada: l.CantidadRecontada,
		})
	}
	path := "/inventarios/" + url.PathEscape(idInventario) + "/reconteo"
	return c.doJSON(ctx, http.MethodPost, path, nil, body, nil)
}

// Consolidar implementa ports.ServicioInventarios.
func (c *Client) Consolidar(ctx context.Context, idInventario string) (ports.ResultadoConsolidacion, error) {
	var resp struct {
		LineasDivergentes int `json:"lineas_divergentes"`
	}
	path := "/inventarios/" + url.PathEscape(idInventario) + "/consolidar"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return ports.ResultadoConsolidacion{}, err
	}
	return ports.ResultadoConsolidacion{LineasDivergentes: resp.LineasDivergentes}, nil
}

// Cerrar implementa ports.ServicioInventarios.
func (c *Client) Cerrar(ctx context.Context, idInventario string) error {
	path := "/inventarios/" + url.PathEscape(idInventario) + "/cerrar"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, nil)
}
