// Package middleware - Test xác thực JWT qua Fiber app giả lập.
package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"social_manager/internal/common"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(AuthMiddleware(testSecret))
	app.Get("/protected", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("user_id"),
			"email":  c.Locals("email"),
		})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Không ký được token: %v", err)
	}
	return signed
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		t.Fatalf("Không decode được response body: %v", err)
	}
	return result
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Thiếu token phải trả về 401, nhận được %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["code"] != common.ErrCodeAuthToken.Code {
		t.Errorf("Mã lỗi phải là %s, nhận được %v", common.ErrCodeAuthToken.Code, body["code"])
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Header không phải Bearer phải trả về 401, nhận được %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := newTestApp(t)

	token := signToken(t, jwt.MapClaims{
		"accountId": "507f1f77bcf86cd799439011",
		"email":     "john@example.com",
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Token hết hạn phải trả về 401, nhận được %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := newTestApp(t)

	token := signToken(t, jwt.MapClaims{
		"accountId": "507f1f77bcf86cd799439011",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Token ký sai secret phải trả về 401, nhận được %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidTokenSetsLocals(t *testing.T) {
	app := newTestApp(t)

	token := signToken(t, jwt.MapClaims{
		"accountId": "507f1f77bcf86cd799439011",
		"email":     "john@example.com",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusOK {
		t.Fatalf("Token hợp lệ phải trả về 200, nhận được %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["userId"] != "507f1f77bcf86cd799439011" {
		t.Errorf("Locals user_id phải là accountId trong token, nhận được %v", body["userId"])
	}
	if body["email"] != "john@example.com" {
		t.Errorf("Locals email phải là email trong token, nhận được %v", body["email"])
	}
}

func TestAuthMiddleware_TokenWithoutAccountID(t *testing.T) {
	app := newTestApp(t)

	token := signToken(t, jwt.MapClaims{
		"email": "john@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Token không có accountId phải trả về 401, nhận được %d", resp.StatusCode)
	}
}
