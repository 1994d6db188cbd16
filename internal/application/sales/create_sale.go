package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// CreateSaleUseCase confirma una venta completa: valida stock, persiste la
// cabecera y sus líneas, y registra las salidas en el libro de inventario.
// Todo dentro de una transacción.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// Execute procesa la venta. Si algún producto no existe o no tiene stock
// suficiente, ninguna escritura queda aplicada.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Consolidar líneas repetidas del mismo producto para validar el stock
	// contra la cantidad total pedida.
	quantities := make(map[string]int, len(in.Items))
	order := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	saleID := uuid.New().String()
	invoiceNumber := generateInvoiceNumber()
	now := time.Now()
	var total decimal.Decimal

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		type line struct {
			product  *entity.Product
			quantity int
		}
		lines := make([]line, 0, len(order))
		for _, productID := range order {
			product, err := productRepo.GetByID(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			qty := quantities[productID]
			if product.CurrentStock < qty {
				return fmt.Errorf("%w: %s (disponible %d, pedido %d)",
					domain.ErrInsufficientStock, product.Name, product.CurrentStock, qty)
			}
			lines = append(lines, line{product: product, quantity: qty})
		}

		total = decimal.Zero
		for _, l := range lines {
			total = total.Add(unitPrice(l.product, in.SaleType).Mul(decimal.NewFromInt(int64(l.quantity))))
		}

		sale := &entity.Sale{
			ID:            saleID,
			InvoiceNumber: invoiceNumber,
			SaleType:      in.SaleType,
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
			CustomerName:  in.CustomerName,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for i, l := range lines {
			price := unitPrice(l.product, in.SaleType)
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				Position:    i + 1,
				ProductID:   l.product.ID,
				ProductName: l.product.Name,
				Brand:       l.product.Brand,
				Size:        l.product.Size,
				Color:       l.product.Color,
				Quantity:    l.quantity,
				UnitPrice:   price,
				Subtotal:    price.Mul(decimal.NewFromInt(int64(l.quantity))),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			out := &entity.InventoryTransaction{
				ID:        uuid.New().String(),
				ProductID: l.product.ID,
				Type:      entity.TxTypeOut,
				Quantity:  l.quantity,
				Notes:     "Venta " + invoiceNumber,
				CreatedAt: now,
			}
			if err := inventoryRepo.Create(out); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateSaleResponse{
		Message:       "Venta registrada exitosamente",
		InvoiceNumber: invoiceNumber,
		TotalAmount:   total,
		SaleID:        saleID,
	}, nil
}

// unitPrice devuelve el precio según el tipo de venta. Cualquier tipo
// distinto de wholesale cobra precio retail.
func unitPrice(p *entity.Product, saleType string) decimal.Decimal {
	if saleType == entity.SaleTypeWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// generateInvoiceNumber genera un número legible: INV-YYYYMMDD-XXXXXX.
func generateInvoiceNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), suffix)
}
