package sales

import (
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// SalesUseCase lecturas del historial de ventas.
type SalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSalesUseCase construye el caso de uso de historial.
func NewSalesUseCase(saleRepo repository.SaleRepository) *SalesUseCase {
	return &SalesUseCase{saleRepo: saleRepo}
}

// List lista las últimas ventas, las más recientes primero.
func (uc *SalesUseCase) List(limit int) (*dto.SaleListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	list, err := uc.saleRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	sales := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		sales = append(sales, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Sales: sales, Count: len(sales)}, nil
}

// GetDetail devuelve la venta con sus líneas, para el detalle y la factura.
func (uc *SalesUseCase) GetDetail(id string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	itemDTOs := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		itemDTOs = append(itemDTOs, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Brand:       it.Brand,
			Size:        it.Size,
			Color:       it.Color,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.SaleDetailResponse{
		Sale:  *toSaleResponse(sale),
		Items: itemDTOs,
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		SaleType:      s.SaleType,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		ItemsCount:    s.ItemsCount,
		CreatedAt:     s.CreatedAt,
	}
}
