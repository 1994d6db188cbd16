package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// InventoryService entradas de stock y libro de movimientos.
type InventoryService struct {
	session *Session
}

// StockIn registra una entrada de stock.
func (s *InventoryService) StockIn(ctx context.Context, in dto.StockInRequest) (*dto.StockInResponse, error) {
	var out dto.StockInResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/inventory/stock-in", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions lista los últimos movimientos. limit <= 0 usa el default del servidor.
func (s *InventoryService) Transactions(ctx context.Context, limit int) (*dto.InventoryTransactionListResponse, error) {
	path := "/api/inventory/transactions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out dto.InventoryTransactionListResponse
	if err := s.session.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
