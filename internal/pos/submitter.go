package pos

import (
	"context"
	"sync"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// SaleCreator envía la venta al backend. Lo implementa client.SalesService.
type SaleCreator interface {
	CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error)
}

// SubmitOptions datos de la venta que no viven en el carrito.
type SubmitOptions struct {
	PaymentMethod string // vacío = "cash"
	CustomerName  string // vacío = mostrador
}

// Submitter confirma la venta: serializa el carrito, hace exactamente una
// llamada al backend y traduce el resultado. Un flag en curso evita el
// doble envío por doble click; no hay reintentos automáticos.
type Submitter struct {
	creator SaleCreator

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter construye el submitter.
func NewSubmitter(creator SaleCreator) *Submitter {
	return &Submitter{creator: creator}
}

// CompleteSale envía el carrito. En éxito vacía el carrito y devuelve la
// factura que combina el número confirmado por el servidor con el snapshot
// de líneas del cliente. En fallo el carrito queda exactamente como estaba.
func (s *Submitter) CompleteSale(ctx context.Context, cart *Cart, opts SubmitOptions) (*Invoice, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	paymentMethod := opts.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = FallbackPaymentMethod
	}

	// Snapshot antes de la llamada: la factura se arma con estas líneas
	// aunque el carrito se vacíe después.
	lines := cart.Lines()
	req := dto.CreateSaleRequest{
		Items:         make([]dto.SaleItemRequest, 0, len(lines)),
		SaleType:      cart.SaleType(),
		PaymentMethod: paymentMethod,
		CustomerName:  opts.CustomerName,
	}
	for _, line := range lines {
		req.Items = append(req.Items, dto.SaleItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	resp, err := s.creator.CreateSale(ctx, req)
	if err != nil {
		return nil, err
	}

	invoice := InvoiceFromSubmission(resp, lines, cart.SaleType(), paymentMethod, opts.CustomerName)
	cart.Clear()
	return invoice, nil
}
