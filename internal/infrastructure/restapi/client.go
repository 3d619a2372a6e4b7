// Package restapi implementa los puertos del dominio sobre el backend REST externo.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/agency-web/internal/domain"
)

// Tamaño máximo de respuesta aceptado del backend.
const maxBodyBytes = 4 << 20

func init() {
	// El backend espera precios como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken adjunta el token bearer del backend al contexto de la petición.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom devuelve el token bearer del contexto ("" si no hay).
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// WithRequestID propaga el id de la petición como cabecera X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// APIError respuesta no exitosa del backend. Unwrap devuelve el error de dominio equivalente.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend HTTP %d: %v", e.Status, e.kind)
	}
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }

// Client cliente JSON del backend. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout aplica a cada llamada completa.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do envía in como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
// Las respuestas envueltas en {"data": ...} se desenvuelven. Los códigos de error se
// traducen a errores de dominio mediante *APIError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	raw, err := c.roundTrip(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrap(raw), out); err != nil {
		return fmt.Errorf("backend %s %s: decodificar respuesta: %w: %v", method, path, domain.ErrUpstream, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", RequestIDFrom(ctx)).Str("method", method).Str("path", path).
			Msg("backend: llamada HTTP fallida")
		if isTimeout(err) && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("backend %s %s: %w: %w: %w", method, path, domain.ErrUpstream, context.DeadlineExceeded, err)
		}
		return nil, fmt.Errorf("backend %s %s: %w: %w", method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("backend %s %s: leer respuesta: %w: %w", method, path, domain.ErrUpstream, err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw), kind: kindFor(resp.StatusCode)}
		ev := log.Warn()
		if resp.StatusCode >= 500 {
			ev = log.Error()
		}
		ev.Str("request_id", RequestIDFrom(ctx)).Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Str("backend_message", apiErr.Message).
			Msg("backend: respuesta con error")
		return nil, apiErr
	}
	log.Debug().Str("request_id", RequestIDFrom(ctx)).Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("backend")
	return raw, nil
}

// isTimeout detecta el vencimiento de http.Client.Timeout, que no siempre envuelve
// context.DeadlineExceeded.
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func kindFor(status int) error {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusConflict:
		return domain.ErrConflict
	default:
		return domain.ErrUpstream
	}
}

// errorMessage extrae {"message": ...} o {"error": ...} del cuerpo de error.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// unwrap devuelve el contenido de "data" cuando la respuesta viene envuelta.
func unwrap(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env map[string]json.RawMessage
	if json.Unmarshal(trimmed, &env) != nil {
		return trimmed
	}
	if data, ok := env["data"]; ok && len(data) > 0 && string(data) != "null" {
		return data
	}
	return trimmed
}

// IsNotFound atajo para errores 404 del backend.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
