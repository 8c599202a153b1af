// Package router - Test các route comment được đăng ký đầy đủ trên app.
package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	basesvc "social_manager/internal/api/base/service"
	commenthdl "social_manager/internal/api/comment/handler"
	"social_manager/internal/api/comment/models"
	commentsvc "social_manager/internal/api/comment/service"
	"social_manager/internal/common"
)

// newRegisteredApp dựng app với toàn bộ route comment, service không cần database:
// request không có token dừng ở auth middleware, đủ để kiểm tra route tồn tại.
func newRegisteredApp() *fiber.App {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	service := &commentsvc.CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](nil),
	}
	Register(v1, commenthdl.NewCommentHandler(service), "test-secret")
	return app
}

func TestRegister_AllRoutesReachable(t *testing.T) {
	app := newRegisteredApp()

	// Không có token: route đã đăng ký trả về 401 từ auth middleware, route thiếu trả về 404
	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/comments"},
		{"GET", "/api/v1/comments/needs-reply"},
		{"POST", "/api/v1/comments/507f1f77bcf86cd799439011/reply"},
		{"GET", "/api/v1/comments/post/507f1f77bcf86cd799439011"},
		{"GET", "/api/v1/comments/find"},
		{"GET", "/api/v1/comments/find-by-id/507f1f77bcf86cd799439011"},
		{"GET", "/api/v1/comments/find-with-pagination"},
		{"GET", "/api/v1/comments/count"},
		{"DELETE", "/api/v1/comments/delete-by-id/507f1f77bcf86cd799439011"},
	}

	for _, r := range routes {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		if err != nil {
			t.Fatalf("app.Test %s %s trả về lỗi: %v", r.method, r.path, err)
		}
		if resp.StatusCode != common.StatusUnauthorized {
			t.Errorf("%s %s phải được đăng ký (401 từ auth middleware), nhận được %d", r.method, r.path, resp.StatusCode)
		}
	}
}

func TestRegister_UnknownRouteNotFound(t *testing.T) {
	app := newRegisteredApp()

	// Ngoài prefix /comments nên không dính middleware đăng ký qua group.Use
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/unknown", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Route không tồn tại phải trả về 404, nhận được %d", resp.StatusCode)
	}
}
