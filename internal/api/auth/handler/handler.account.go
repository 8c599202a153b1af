// Package authhdl - handler xử lý request HTTP cho domain auth.
package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "social_manager/internal/api/base/handler"
	"social_manager/internal/api/auth/dto"
	authsvc "social_manager/internal/api/auth/service"
	"social_manager/internal/common"
)

// AccountHandler xử lý các request liên quan đến tài khoản
type AccountHandler struct {
	accountService *authsvc.AccountService
}

// NewAccountHandler tạo mới AccountHandler
func NewAccountHandler(accountService *authsvc.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// currentAccountID lấy account ID từ context (đã được AuthMiddleware set)
func currentAccountID(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// HandleRegister đăng ký tài khoản mới
func (h *AccountHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.RegisterInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.Register(c.Context(), &input)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}

// HandleLogin đăng nhập, trả về JWT token
func (h *AccountHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.accountService.Login(c.Context(), &input)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMe trả về thông tin tài khoản hiện tại
func (h *AccountHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}

// HandleUpdatePreferences cập nhật tùy chọn vận hành của tài khoản hiện tại
func (h *AccountHandler) HandleUpdatePreferences(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.UpdatePreferencesInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.UpdatePreferences(c.Context(), id, &input)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}

// HandleUpdateSubscription đổi gói đăng ký của tài khoản hiện tại
func (h *AccountHandler) HandleUpdateSubscription(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.UpdateSubscriptionInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.UpdateSubscription(c.Context(), id, &input)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}

// HandleLinkSocial kết nối tài khoản mạng xã hội
func (h *AccountHandler) HandleLinkSocial(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.LinkSocialInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.LinkSocial(c.Context(), id, &input)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}

// HandleUnlinkSocial ngắt kết nối tài khoản mạng xã hội
func (h *AccountHandler) HandleUnlinkSocial(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.UnlinkSocialInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.accountService.UnlinkSocial(c.Context(), id, input.Platform)
		basehdl.HandleResponse(c, account, err)
		return nil
	})
}
