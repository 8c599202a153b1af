// Package router đăng ký các route thuộc domain content: bài đăng và vòng đời trạng thái.
package router

import (
	"github.com/gofiber/fiber/v3"

	contenthdl "social_manager/internal/api/content/handler"
	"social_manager/internal/api/middleware"
	apirouter "social_manager/internal/api/router"
)

// Register đăng ký tất cả route content lên v1
func Register(v1 fiber.Router, handler *contenthdl.PostHandler, jwtSecret string) {
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	protected := []fiber.Handler{authMiddleware}

	// Path rỗng đăng ký đúng prefix (/api/v1/posts), "/" sẽ thành /posts/ do StrictRouting
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "POST", "", protected, handler.HandleCreateDraft)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "GET", "", protected, handler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "GET", "/:id", protected, handler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "DELETE", "/:id", protected, handler.HandleDelete)

	// Vòng đời trạng thái: draft → scheduled → published, bất kỳ → failed
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "POST", "/:id/schedule", protected, handler.HandleSchedule)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "POST", "/:id/publish", protected, handler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "POST", "/:id/fail", protected, handler.HandleMarkFailed)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "PUT", "/:id/metrics", protected, handler.HandleUpdateMetrics)
}
