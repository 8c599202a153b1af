// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập, tài khoản.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "social_manager/internal/api/auth/handler"
	"social_manager/internal/api/middleware"
	apirouter "social_manager/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1
func Register(v1 fiber.Router, handler *authhdl.AccountHandler, jwtSecret string) {
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	protected := []fiber.Handler{authMiddleware}

	// Public
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/register", nil, handler.HandleRegister)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, handler.HandleLogin)

	// Yêu cầu token
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", protected, handler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/preferences", protected, handler.HandleUpdatePreferences)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/subscription", protected, handler.HandleUpdateSubscription)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/social/link", protected, handler.HandleLinkSocial)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/social/unlink", protected, handler.HandleUnlinkSocial)
}
