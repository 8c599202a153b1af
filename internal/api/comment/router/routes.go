// Package router đăng ký các route thuộc domain comment: ingest, hàng đợi, trả lời.
package router

import (
	"github.com/gofiber/fiber/v3"

	commenthdl "social_manager/internal/api/comment/handler"
	"social_manager/internal/api/middleware"
	apirouter "social_manager/internal/api/router"
)

// Register đăng ký tất cả route comment lên v1
func Register(v1 fiber.Router, handler *commenthdl.CommentHandler, jwtSecret string) {
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	protected := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "", protected, handler.HandleIngest)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/needs-reply", protected, handler.HandleNeedsReplyQueue)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/:id/reply", protected, handler.HandleReply)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/post/:postId", protected, handler.HandleListByPost)

	// CRUD chung theo filter từ BaseHandler
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/find", protected, handler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/find-by-id/:id", protected, handler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/find-with-pagination", protected, handler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/count", protected, handler.CountDocuments)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/delete-by-id/:id", protected, handler.DeleteById)
}
