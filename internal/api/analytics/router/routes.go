// Package router đăng ký các route thuộc domain analytics: ingest và truy vấn snapshot.
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "social_manager/internal/api/analytics/handler"
	"social_manager/internal/api/middleware"
	apirouter "social_manager/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1
func Register(v1 fiber.Router, handler *analyticshdl.SnapshotHandler, jwtSecret string) {
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	protected := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/snapshots", protected, handler.HandleIngest)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/snapshots", protected, handler.HandleQuery)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/snapshots/latest", protected, handler.HandleLatest)
}
