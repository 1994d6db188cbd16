package pos_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/pos"
)

const (
	testWait = 2 * time.Second
	testTick = 10 * time.Millisecond
)

// fakeCreator implementación de prueba de pos.SaleCreator. Registra cada
// request recibido y puede bloquearse hasta que el test lo libere.
type fakeCreator struct {
	mu       sync.Mutex
	requests []dto.CreateSaleRequest
	resp     *dto.CreateSaleResponse
	err      error
	block    chan struct{} // nil = no bloquear
}

func (f *fakeCreator) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, in)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeCreator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func filledCart(t *testing.T) *pos.Cart {
	t.Helper()
	cart := pos.NewCart(entity.SaleTypeRetail)
	p1 := testProduct()
	p2 := testProduct()
	p2.ID = "p-2"
	p2.Name = "Suede Classic"
	p2.Brand = "Puma"
	p2.RetailPrice = decimal.NewFromInt(60)
	require.NoError(t, cart.Add(p1))
	require.NoError(t, cart.Add(p1))
	require.NoError(t, cart.Add(p2))
	return cart
}

// ──────────────────────────────────────────────────────────────────────────────
// CompleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCompleteSale_ExitoVaciaElCarritoYArmaLaFactura(t *testing.T) {
	creator := &fakeCreator{resp: &dto.CreateSaleResponse{
		InvoiceNumber: "INV-20260831-A1B2C3",
		TotalAmount:   decimal.NewFromInt(260),
		SaleID:        "s-1",
	}}
	submitter := pos.NewSubmitter(creator)
	cart := filledCart(t)

	invoice, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{
		PaymentMethod: "mpesa",
		CustomerName:  "Juan Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, cart.Len(), "el carrito queda vacío tras el éxito")
	assert.Equal(t, 1, creator.calls(), "exactamente una llamada al backend")

	assert.Equal(t, "INV-20260831-A1B2C3", invoice.InvoiceNumber,
		"el número de factura viene del servidor")
	assert.Equal(t, "Juan Pérez", invoice.CustomerName)
	assert.Equal(t, "mpesa", invoice.PaymentMethod)
	require.Len(t, invoice.Lines, 2, "las líneas salen del snapshot del carrito")
	assert.True(t, invoice.Total.Equal(decimal.NewFromInt(260)),
		"total 2×100 + 1×60 = 260, fue %s", invoice.Total)
}

func TestCompleteSale_RequestConsolidadoDelCarrito(t *testing.T) {
	creator := &fakeCreator{resp: &dto.CreateSaleResponse{InvoiceNumber: "INV-X"}}
	submitter := pos.NewSubmitter(creator)
	cart := filledCart(t)

	_, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{})
	require.NoError(t, err)

	req := creator.requests[0]
	require.Len(t, req.Items, 2)
	assert.Equal(t, "p-1", req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, "p-2", req.Items[1].ProductID)
	assert.Equal(t, entity.SaleTypeRetail, req.SaleType)
	assert.Equal(t, pos.FallbackPaymentMethod, req.PaymentMethod,
		"sin método de pago se envía cash")
}

func TestCompleteSale_CarritoVacio_Rechazado(t *testing.T) {
	creator := &fakeCreator{}
	submitter := pos.NewSubmitter(creator)
	cart := pos.NewCart(entity.SaleTypeRetail)

	_, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{})
	assert.ErrorIs(t, err, pos.ErrEmptyCart)
	assert.Equal(t, 0, creator.calls(), "no se llama al backend con carrito vacío")
}

func TestCompleteSale_FalloDejaElCarritoIntacto(t *testing.T) {
	creator := &fakeCreator{err: errors.New("stock insuficiente")}
	submitter := pos.NewSubmitter(creator)
	cart := filledCart(t)
	totalBefore := cart.Total()

	_, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{})
	require.Error(t, err)

	assert.Equal(t, 2, cart.Len(), "las líneas se conservan tras el fallo")
	assert.True(t, cart.Total().Equal(totalBefore), "el total no cambia tras el fallo")
}

// El doble click no produce dos ventas: mientras hay un envío en curso, el
// segundo intento se rechaza sin llamar al backend.
func TestCompleteSale_EnvioEnCurso_RechazaElSegundo(t *testing.T) {
	creator := &fakeCreator{
		resp:  &dto.CreateSaleResponse{InvoiceNumber: "INV-X"},
		block: make(chan struct{}),
	}
	submitter := pos.NewSubmitter(creator)
	cart := filledCart(t)

	done := make(chan error, 1)
	go func() {
		_, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{})
		done <- err
	}()

	// Esperar a que el primer envío esté dentro del backend.
	require.Eventually(t, func() bool { return creator.calls() == 1 },
		testWait, testTick, "el primer envío debe llegar al backend")

	_, err := submitter.CompleteSale(context.Background(), cart, pos.SubmitOptions{})
	assert.ErrorIs(t, err, pos.ErrSubmitInProgress)

	close(creator.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, creator.calls(), "una sola venta registrada")
}
