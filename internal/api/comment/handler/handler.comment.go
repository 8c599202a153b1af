// Package commenthdl - handler xử lý request HTTP cho domain comment.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "social_manager/internal/api/base/handler"
	"social_manager/internal/api/comment/dto"
	"social_manager/internal/api/comment/models"
	commentsvc "social_manager/internal/api/comment/service"
	"social_manager/internal/common"
)

// CommentHandler xử lý các request liên quan đến bình luận.
// Embed BaseHandler để có sẵn các endpoint đọc/đếm/xóa chung theo filter.
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment]
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler(commentService *commentsvc.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment](commentService.BaseServiceMongoImpl),
		commentService: commentService,
	}
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

// HandleIngest ghi nhận một bình luận thu về từ platform
func (h *CommentHandler) HandleIngest(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.IngestCommentInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Ingest(c.Context(), userID, &input)
		basehdl.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleNeedsReplyQueue trả về hàng đợi bình luận cần trả lời
func (h *CommentHandler) HandleNeedsReplyQueue(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.commentService.NeedsReplyQueue(c.Context(), userID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleReply trả lời một bình luận
func (h *CommentHandler) HandleReply(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.ReplyCommentInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Reply(c.Context(), userID, commentID, &input)
		basehdl.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleListByPost liệt kê bình luận của một bài đăng
func (h *CommentHandler) HandleListByPost(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		postID, err := basehdl.ParseObjectIDParam(c, "postId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.commentService.ListByPost(c.Context(), userID, postID, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
