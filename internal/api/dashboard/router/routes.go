// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"github.com/gofiber/fiber/v3"

	dashboardhdl "social_manager/internal/api/dashboard/handler"
	"social_manager/internal/api/middleware"
	apirouter "social_manager/internal/api/router"
)

// Register đăng ký tất cả route dashboard lên v1
func Register(v1 fiber.Router, handler *dashboardhdl.DashboardHandler, jwtSecret string) {
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	protected := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "", protected, handler.HandlePoll)
}
