// Package client es el cliente REST tipado del backend. La sesión (token y
// usuario) es un objeto explícito que se inyecta en los servicios: se llena
// en el login, se lee en cada request y se limpia en el logout — nunca hay
// estado ambiente.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

const defaultTimeout = 30 * time.Second

// APIError error reportado por el backend (status no-2xx) con el mensaje
// del cuerpo, listo para mostrar al usuario.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Session contexto de autenticación compartido por todos los servicios.
type Session struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
	user  *dto.UserResponse
}

// NewSession crea la sesión contra la URL base del API (sin /api final).
func NewSession(baseURL string) *Session {
	return &Session{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

// SetAuth guarda el token y el usuario tras un login exitoso.
func (s *Session) SetAuth(token string, user dto.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
}

// Token devuelve el token vigente (vacío si no hay sesión).
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User devuelve el usuario autenticado o nil.
func (s *Session) User() *dto.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear limpia la sesión (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// do ejecuta una llamada JSON. body y out pueden ser nil. Un status no-2xx
// se convierte en *APIError con el mensaje del servidor o uno genérico.
func (s *Session) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := s.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("llamada %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// doRaw ejecuta una llamada que devuelve bytes crudos (ej. el PDF de la factura).
func (s *Session) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	if token := s.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamada %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: "error inesperado del servidor",
	}
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	return apiErr
}

// Client agrupa los servicios tipados sobre una misma sesión.
type Client struct {
	Session   *Session
	Auth      *AuthService
	Products  *ProductsService
	Catalog   *CatalogService
	Inventory *InventoryService
	Sales     *SalesService
	Dashboard *DashboardService
	Reports   *ReportsService
}

// New construye el cliente completo contra la URL base del API.
func New(baseURL string) *Client {
	session := NewSession(baseURL)
	return &Client{
		Session:   session,
		Auth:      &AuthService{session: session},
		Products:  &ProductsService{session: session},
		Catalog:   &CatalogService{session: session},
		Inventory: &InventoryService{session: session},
		Sales:     &SalesService{session: session},
		Dashboard: &DashboardService{session: session},
		Reports:   &ReportsService{session: session},
	}
}
