package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/client"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso
// ──────────────────────────────────────────────────────────────────────────────

// newFakeBackend levanta un httptest.Server con las rutas mínimas: login,
// /me protegido, listado de productos y creación de venta.
func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "secreto" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: "usuario o contraseña incorrectos",
			})
			return
		}
		writeJSON(w, http.StatusOK, dto.AuthResponse{
			Message:     "Login exitoso",
			AccessToken: "token-de-prueba",
			User:        dto.UserResponse{ID: "u-1", Username: in.Username, Role: "staff"},
		})
	})

	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-de-prueba" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "Authorization header requerido",
			})
			return
		}
		writeJSON(w, http.StatusOK, dto.UserResponse{ID: "u-1", Username: "vendedor", Role: "staff"})
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ProductListResponse{
			Products: []dto.ProductResponse{{ID: "p-1", Name: "Air Max 90", CurrentStock: 5}},
			Count:    1,
		})
	})

	mux.HandleFunc("POST /api/sales", func(w http.ResponseWriter, r *http.Request) {
		var in dto.CreateSaleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if len(in.Items) == 0 {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Code: "VALIDATION", Message: "la venta necesita al menos un artículo",
			})
			return
		}
		writeJSON(w, http.StatusCreated, dto.CreateSaleResponse{
			Message:       "Venta registrada exitosamente",
			InvoiceNumber: "INV-20260831-AABBCC",
			TotalAmount:   decimal.NewFromInt(200),
			SaleID:        "s-1",
		})
	})

	mux.HandleFunc("GET /api/sales/s-1/invoice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaTokenYUsuarioEnLaSesion(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	out, err := c.Auth.Login(context.Background(), "vendedor", "secreto")
	require.NoError(t, err)

	assert.Equal(t, "token-de-prueba", c.Session.Token())
	require.NotNil(t, c.Session.User())
	assert.Equal(t, "vendedor", c.Session.User().Username)
	assert.Equal(t, "Login exitoso", out.Message)
}

func TestLogin_CredencialesInvalidas_APIError(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	_, err := c.Auth.Login(context.Background(), "vendedor", "incorrecta")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr, "los errores del backend llegan como *APIError")
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "usuario o contraseña incorrectos", apiErr.Message)
	assert.Empty(t, c.Session.Token(), "un login fallido no deja token en la sesión")
}

func TestMe_EnviaElBearerToken(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	_, err := c.Auth.Me(context.Background())
	require.Error(t, err, "sin sesión el backend responde 401")

	_, err = c.Auth.Login(context.Background(), "vendedor", "secreto")
	require.NoError(t, err)

	user, err := c.Auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	_, err := c.Auth.Login(context.Background(), "vendedor", "secreto")
	require.NoError(t, err)

	c.Auth.Logout()
	assert.Empty(t, c.Session.Token())
	assert.Nil(t, c.Session.User())
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicios
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsList_DecodificaLaLista(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	out, err := c.Products.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Air Max 90", out.Products[0].Name)
	assert.Equal(t, 5, out.Products[0].CurrentStock)
}

func TestCreateSale_ConfirmaLaVenta(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	out, err := c.Sales.CreateSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p-1", Quantity: 2}},
		SaleType:      "retail",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-20260831-AABBCC", out.InvoiceNumber)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(200)))
}

func TestInvoicePDF_DevuelveLosBytes(t *testing.T) {
	srv := newFakeBackend(t)
	c := client.New(srv.URL)

	payload, err := c.Sales.InvoicePDF(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "%PDF", "la respuesta cruda es el PDF")
}
