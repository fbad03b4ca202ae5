// Package backend implementa los puertos de repositorio contra el servicio REST
// externo de inventario y asignación (引当). Todas las llamadas pasan por un
// circuit breaker: solo los errores de red y los 5xx cuentan como fallo.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/pkg/config"
	"github.com/jhoicas/lot-allocation-bff/pkg/logger"
)

const maxResponseBytes = 4 << 20

// Client cliente HTTP del backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	log        *logger.Logger
	onState    func(from, to gobreaker.State)
}

// Option personaliza el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithStateObserver recibe cada cambio de estado del breaker (métricas).
func WithStateObserver(fn func(from, to gobreaker.State)) Option {
	return func(c *Client) { c.onState = fn }
}

// NewClient construye el cliente con su circuit breaker.
func NewClient(cfg config.BackendConfig, br config.BreakerConfig, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("backend"),
	}
	for _, o := range opts {
		o(c)
	}

	failures := br.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "backend",
		MaxRequests: br.MaxRequests,
		Interval:    br.Interval,
		Timeout:     br.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("cambio de estado del circuit breaker")
			if c.onState != nil {
				c.onState(from, to)
			}
		},
		IsSuccessful: countsAsSuccess,
	})
	return c
}

// State estado actual del breaker.
func (c *Client) State() gobreaker.State { return c.cb.State() }

// countsAsSuccess: errores de negocio (4xx) y cancelaciones del llamador no abren el breaker.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status < 500
	}
	return false
}

// do ejecuta method path con body JSON opcional y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, query, body, out)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.log.Warn().Str("method", method).Str("path", path).Msg("backend no disponible: circuit breaker abierto")
		return fmt.Errorf("backend: %s %s: %w", method, path, domain.ErrUnavailable)
	case err != nil:
		return err
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("backend: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: deserializar respuesta de %s: %w", path, err)
	}
	return nil
}

// errorBody cubre las formas de error que devuelve el backend:
// {"detail": "..."}, {"detail": {...}}, {"error": {"code","message"}} y {"code","message"}.
type errorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}
	apiErr.Code, apiErr.Message = eb.Code, eb.Message
	if eb.Error != nil {
		apiErr.Code, apiErr.Message = eb.Error.Code, eb.Error.Message
	}
	if apiErr.Message == "" && len(eb.Detail) > 0 {
		var s string
		if json.Unmarshal(eb.Detail, &s) == nil {
			apiErr.Message = s
		} else {
			var nested struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			if json.Unmarshal(eb.Detail, &nested) == nil && nested.Message != "" {
				apiErr.Code, apiErr.Message = nested.Code, nested.Message
			} else {
				apiErr.Message = string(eb.Detail)
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// listOf acepta tanto un array como {"items": [...]}.
type listOf[T any] struct {
	Items []T
}

func (l *listOf[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Items)
	}
	var wrapped struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	l.Items = wrapped.Items
	return nil
}

func (l listOf[T]) slice() []T {
	if l.Items == nil {
		return []T{}
	}
	return l.Items
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
