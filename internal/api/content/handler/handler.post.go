// Package contenthdl - handler xử lý request HTTP cho domain content.
package contenthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "social_manager/internal/api/base/handler"
	basemodels "social_manager/internal/api/base/models"
	"social_manager/internal/api/content/dto"
	contentsvc "social_manager/internal/api/content/service"
	"social_manager/internal/common"
)

// PostHandler xử lý các request liên quan đến bài đăng
type PostHandler struct {
	postService *contentsvc.PostService
}

// NewPostHandler tạo mới PostHandler
func NewPostHandler(postService *contentsvc.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

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

// HandleCreateDraft tạo bài đăng nháp mới
func (h *PostHandler) HandleCreateDraft(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CreatePostInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.CreateDraft(c.Context(), userID, &input)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandleSchedule lên lịch bài đăng (draft → scheduled)
func (h *PostHandler) HandleSchedule(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.SchedulePostInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.Schedule(c.Context(), userID, postID, &input)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandlePublish publish bài đăng (draft/scheduled → published)
func (h *PostHandler) HandlePublish(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		// Body có thể rỗng (đăng qua graph client) hoặc chứa platformIds đã có sẵn
		var input dto.PublishPostInput
		if len(c.Body()) > 0 {
			if err := basehdl.ParseRequestBody(c, &input); err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		post, err := h.postService.Publish(c.Context(), userID, postID, &input)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandleMarkFailed chuyển bài đăng sang trạng thái failed
func (h *PostHandler) HandleMarkFailed(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		// Body có thể rỗng hoặc chứa lý do thất bại từ client
		var input dto.MarkFailedInput
		if len(c.Body()) > 0 {
			if err := basehdl.ParseRequestBody(c, &input); err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		post, err := h.postService.MarkFailed(c.Context(), userID, postID, input.Reason)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandleUpdateMetrics ghi nhận số liệu tương tác từ job đồng bộ metrics
func (h *PostHandler) HandleUpdateMetrics(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.UpdateMetricsInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.UpdateMetrics(c.Context(), userID, postID, &input)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandleList liệt kê bài đăng của tài khoản hiện tại.
// Query params: status, platform, page, limit.
func (h *PostHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		status := basemodels.PostStatus(c.Query("status", ""))
		platform := basemodels.Platform(c.Query("platform", ""))

		result, err := h.postService.ListByUser(c.Context(), userID, status, platform, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetById trả về một bài đăng của tài khoản hiện tại
func (h *PostHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.FindOne(c.Context(), map[string]interface{}{"_id": postID, "userId": userID}, nil)
		basehdl.HandleResponse(c, post, err)
		return nil
	})
}

// HandleDelete xóa một bài đăng của tài khoản hiện tại
func (h *PostHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.postService.DeleteOne(c.Context(), map[string]interface{}{"_id": postID, "userId": userID})
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
