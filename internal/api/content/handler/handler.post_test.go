// Package contenthdl - Test parse request cho các thao tác post không cần database.
package contenthdl

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	contentsvc "social_manager/internal/api/content/service"
	"social_manager/internal/common"
	"social_manager/internal/global"
)

// newMarkFailedApp dựng app với route đánh dấu thất bại, user_id gắn sẵn qua middleware.
// Service rỗng đủ dùng vì các case lỗi dừng ở bước parse, chưa chạm tới service.
func newMarkFailedApp() *fiber.App {
	global.InitValidator()

	app := fiber.New()
	handler := NewPostHandler(&contentsvc.PostService{})

	app.Use(func(c fiber.Ctx) error {
		c.Locals("user_id", "507f1f77bcf86cd799439011")
		return c.Next()
	})
	app.Post("/posts/:id/fail", handler.HandleMarkFailed)
	return app
}

func TestHandleMarkFailed_InvalidBodyRejected(t *testing.T) {
	app := newMarkFailedApp()

	req := httptest.NewRequest("POST", "/posts/507f1f77bcf86cd799439012/fail", strings.NewReader(`{"reason":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != common.StatusBadRequest {
		t.Errorf("Body JSON hỏng phải trả về 400, nhận được %d", resp.StatusCode)
	}
}

func TestHandleMarkFailed_InvalidPostIdRejected(t *testing.T) {
	app := newMarkFailedApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/posts/not-an-id/fail", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != common.StatusBadRequest {
		t.Errorf("Id không hợp lệ phải trả về 400, nhận được %d", resp.StatusCode)
	}
}

func TestHandleMarkFailed_MissingUserRejected(t *testing.T) {
	global.InitValidator()

	app := fiber.New()
	handler := NewPostHandler(&contentsvc.PostService{})
	app.Post("/posts/:id/fail", handler.HandleMarkFailed)

	resp, err := app.Test(httptest.NewRequest("POST", "/posts/507f1f77bcf86cd799439012/fail", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Thiếu user_id phải trả về 401, nhận được %d", resp.StatusCode)
	}
}
