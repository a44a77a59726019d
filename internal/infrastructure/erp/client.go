// Package erp implementa los puertos de salida contra la API del ERP central.
// Usa net/http de la stdlib detrás de cada puerto; para tests se puede
// inyectar un mock del puerto o un httptest.Server como base URL.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/pkg/config"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// Client cliente HTTP contra el ERP. Implementa todos los puertos de
// application/ports; los métodos están repartidos por archivo según servicio.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con el timeout de red configurado.
func NewClient(cfg config.ERPConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log,
	}
}

// doJSON lanza una petición JSON y decodifica la respuesta en out (si no es nil).
// 404 se traduce a domain.ErrNoEncontrado; cualquier otro estado no 2xx a
// domain.ErrServicioRemoto. Los fallos de red también envuelven ErrServicioRemoto
// para que la capa HTTP los distinga de los errores de validación.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erp: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("erp: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrServicioRemoto, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrNoEncontrado, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		detalle, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: estado %d: %s", domain.ErrServicioRemoto, method, path, resp.StatusCode, strings.TrimSpace(string(detalle)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decodificar respuesta: %v", domain.ErrServicioRemoto, method, path, err)
	}
	return nil
}
