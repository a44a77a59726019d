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

var _ ports.ServicioTraspasos = (*Client)(nil)

type lineaTraspasoWire struct {
	NumLinea           int             `json:"num_linea"`
	CodigoArticulo     string          `json:"codigo_articulo"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	AlmacenOrigen      string          `json:"almacen_origen"`
	UbicacionOrigen    string          `json:"ubicacion_origen"`
	AlmacenDestino     string          `json:"almacen_destino"`
	UbicacionDestino   string          `json:"ubicacion_destino"`
	IDOperarioAsignado int64           `json:"id_operario_asignado"`
	Estado             string          `json:"estado"`
}

type ordenTraspasoWire struct {
	ID            string              `json:"id"`
	Empresa       string              `json:"empresa"`
	CreadoPor     int64               `json:"creado_por"`
	FechaCreacion time.Time           `json:"fecha_creacion"`
	Lineas        []lineaTraspasoWire `json:"lineas"`
}

func aLineaWire(l entity.LineaTraspaso) lineaTraspasoWire {
	return lineaTraspasoWire{
		NumLinea:           l.NumLinea,
		CodigoArticulo:     l.CodigoArticulo,
		Cantidad:           l.Cantidad,
		AlmacenOrigen:      l.AlmacenOrigen,
		UbicacionOrigen:    l.UbicacionOrigen,
		AlmacenDestino:     l.AlmacenDestino,
		UbicacionDestino:   l.UbicacionDestino,
		IDOperarioAsignado: l.IDOperarioAsignado,
		Estado:             string(l.Estado),
	}
}

func (w ordenTraspasoWire) aEntidad() entity.OrdenTraspaso {
	orden := entity.OrdenTraspaso{
		ID:            w.ID,
		Empresa:       w.Empresa,
		CreadoPor:     w.CreadoPor,
		FechaCreacion: w.FechaCreacion,
		Lineas:        make([]entity.LineaTraspaso, 0, len(w.Lineas)),
	}
	for _, l := range w.Lineas {
		orden.Lineas = append(orden.Lineas, entity.LineaTraspaso{
			NumLinea:           l.NumLinea,
			CodigoArticulo:     l.CodigoArticulo,
			Cantidad:           l.Cantidad,
			AlmacenOrigen:      l.AlmacenOrigen,
			UbicacionOrigen:    l.UbicacionOrigen,
			AlmacenDestino:     l.AlmacenDestino,
			UbicacionDestino:   l.UbicacionDestino,
			IDOperarioAsignado: l.IDOperarioAsignado,
			Estado:             entity.EstadoLineaTraspaso(l.Estado),
		})
	}
	return orden
}

// CrearOrden implementa ports.ServicioTraspasos.
func (c *Client) CrearOrden(ctx context.Context, orden entity.OrdenTraspaso) (entity.OrdenTraspaso, error) {
	body := ordenTraspasoWire{
		ID:            orden.ID,
		Empresa:       orden.Empresa,
		CreadoPor:     orden.CreadoPor,
		FechaCreacion: orden.FechaCreacion,
		Lineas:        make([]lineaTraspasoWire, 0, len(orden.Lineas)),
	}
	for _, l := range orden.Lineas {
		body.Lineas = append(body.Lineas, aLineaWire(l))
	}
	var resp ordenTraspasoWire
	if err := c.doJSON(ctx, http.MethodPost, "/traspasos", nil, body, &resp); err != nil {
		return entity.OrdenTraspaso{}, err
	}
	return resp.aEntidad(), nil
}

// ActualizarLinea implementa ports.ServicioTraspasos.
func (c *Client) ActualizarLinea(ctx context.Context, idOrden string, linea entity.LineaTraspaso) error {
	path := fmt.Sprintf("/traspasos/%s/lineas/%d", url.PathEscape(idOrden), linea.NumLinea)
	return c.doJSON(ctx, http.MethodPut, path, nil, aLineaWire(linea), nil)
}

// CancelarLinea implementa ports.ServicioTraspasos.
func (c *Client) CancelarLinea(ctx context.Context, idOrden string, numLinea int) error {
	path := fmt.Sprintf("/traspasos/%s/lineas/%d", url.PathEscape(idOrden), numLinea)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListarOrdenes implementa ports.ServicioTraspasos.
func (c *Client) ListarOrdenes(ctx context.Context, empresa string) ([]entity.OrdenTraspaso, error) {
	q := url.Values{}
	q.Set("empresa", empresa)
	var resp []ordenTraspasoWire
	if err := c.doJSON(ctx, http.MethodGet, "/traspasos", q, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.OrdenTraspaso, 0, len(resp))
	for _, w := range resp {
		out = append(out, w.aEntidad())
	}
	return out, nil
}
