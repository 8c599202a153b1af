// Package router - Test đăng ký route gốc của collection với StrictRouting.
package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func okHandler(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestRegisterRouteWithMiddleware_EmptyPathMatchesPrefixExactly(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	RegisterRouteWithMiddleware(v1, "/posts", "GET", "", nil, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/posts", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("GET /api/v1/posts (không có slash cuối) phải match route gốc, nhận được %d", resp.StatusCode)
	}
}

func TestRegisterRouteWithMiddleware_SubPathsStillMatch(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	RegisterRouteWithMiddleware(v1, "/posts", "GET", "/:id/metrics", nil, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/posts/507f1f77bcf86cd799439011/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Route con với param phải match, nhận được %d", resp.StatusCode)
	}
}

func TestRegisterRouteWithMiddleware_MiddlewareRuns(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	called := false
	mw := func(c fiber.Ctx) error {
		called = true
		return c.Next()
	}
	RegisterRouteWithMiddleware(v1, "/posts", "GET", "", []fiber.Handler{mw}, okHandler)

	if _, err := app.Test(httptest.NewRequest("GET", "/api/v1/posts", nil)); err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if !called {
		t.Error("Middleware đăng ký qua group.Use() phải được gọi")
	}
}

func TestRegisterRouteWithMiddleware_MethodMismatch(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	RegisterRouteWithMiddleware(v1, "/posts", "POST", "", nil, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/posts", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode == fiber.StatusOK {
		t.Errorf("GET không được match route chỉ đăng ký POST, nhận được %d", resp.StatusCode)
	}
}
