package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartshoe/pos-api/internal/application/analytics"
	"github.com/smartshoe/pos-api/internal/application/dto"
)

// ReportsHandler expone los reportes analíticos de ventas e inventario.
type ReportsHandler struct {
	uc *analytics.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *analytics.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Overview godoc
// @Summary      Totales históricos, del mes y metas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesOverviewResponse
// @Router       /api/sales/analytics/overview [get]
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.GetOverview(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Trend godoc
// @Summary      Series diaria y mensual de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesTrendResponse
// @Router       /api/sales/analytics/trend [get]
func (h *ReportsHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesTrend(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Ingresos por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategorySalesPoint
// @Router       /api/sales/analytics/categories [get]
func (h *ReportsHandler) Categories(c *fiber.Ctx) error {
	report, err := h.uc.GetSalesReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report.ByCategory)
}

// Brands godoc
// @Summary      Ingresos y unidades por marca
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BrandSalesPoint
// @Router       /api/sales/analytics/brands [get]
func (h *ReportsHandler) Brands(c *fiber.Ctx) error {
	report, err := h.uc.GetSalesReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report.ByBrand)
}

// TopProducts godoc
// @Summary      Productos con mayor ingreso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopProductPoint
// @Router       /api/sales/analytics/top-products [get]
func (h *ReportsHandler) TopProducts(c *fiber.Ctx) error {
	report, err := h.uc.GetSalesReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report.TopProducts)
}

// Inventory godoc
// @Summary      Reporte de inventario valorizado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/sales/analytics/inventory [get]
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
