// Package dashboardhdl - handler xử lý request HTTP cho domain dashboard.
package dashboardhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "social_manager/internal/api/base/handler"
	dashboardsvc "social_manager/internal/api/dashboard/service"
)

// DashboardHandler xử lý endpoint poll của dashboard
type DashboardHandler struct {
	dashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo mới DashboardHandler
func NewDashboardHandler(dashboardService *dashboardsvc.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandlePoll trả về dữ liệu tổng hợp cho một lần poll của dashboard.
// Nguồn dữ liệu thất bại trả về zero value, endpoint không bao giờ lỗi vì upstream.
func (h *DashboardHandler) HandlePoll(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result := h.dashboardService.Poll(c.Context())
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
