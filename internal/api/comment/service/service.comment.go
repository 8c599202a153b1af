// Package commentsvc - service xử lý bình luận: ingest, hàng đợi cần trả lời, trả lời.
package commentsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "social_manager/internal/api/base/models"
	basesvc "social_manager/internal/api/base/service"
	"social_manager/internal/api/comment/dto"
	"social_manager/internal/api/comment/models"
	"social_manager/internal/common"
	"social_manager/internal/database"
	"social_manager/internal/global"
)

// CommentService xử lý nghiệp vụ bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
}

// NewCommentService tạo mới CommentService trên collection comments của store
func NewCommentService(store *database.Store) (*CommentService, error) {
	coll, err := store.Collection(store.Names.Comments)
	if err != nil {
		return nil, fmt.Errorf("lấy collection comments: %w", err)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](coll),
	}, nil
}

// Ingest ghi nhận một bình luận thu về từ platform.
// Sentiment và toxicityScore được ghi nhận tại thời điểm ingest.
// Trùng platformCommentId trả về lỗi conflict, unique sparse index chặn race còn lại.
func (s *CommentService) Ingest(ctx context.Context, userID primitive.ObjectID, input *dto.IngestCommentInput) (models.Comment, error) {
	var zero models.Comment

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	postID, err := primitive.ObjectIDFromHex(input.PostID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, "postId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}

	// Kiểm tra trùng trước khi insert, trả về conflict rõ ràng thay vì lỗi index
	if input.PlatformCommentID != "" {
		exists, err := s.DocumentExists(ctx, bson.M{"platformCommentId": input.PlatformCommentID})
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, common.ErrDuplicate
		}
	}

	comment := models.Comment{
		PostID:            postID,
		UserID:            userID,
		Platform:          input.Platform,
		PlatformCommentID: input.PlatformCommentID,
		Author:            input.Author,
		Content:           input.Content,
		Sentiment:         input.Sentiment,
		ToxicityScore:     input.ToxicityScore,
		NeedsReply:        input.NeedsReply,
	}

	return s.InsertOne(ctx, comment)
}

// NeedsReplyQueue trả về hàng đợi bình luận cần trả lời, cũ nhất trước
func (s *CommentService) NeedsReplyQueue(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Comment], error) {
	filter := bson.M{
		"userId":     userID,
		"needsReply": true,
		"replied":    false,
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Reply trả lời một bình luận: set replied, replyContent, replyTime và gỡ khỏi hàng đợi
func (s *CommentService) Reply(ctx context.Context, userID, commentID primitive.ObjectID, input *dto.ReplyCommentInput) (models.Comment, error) {
	var zero models.Comment

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	comment, err := s.FindOne(ctx, bson.M{"_id": commentID, "userId": userID}, nil)
	if err != nil {
		return zero, err
	}
	if comment.Replied {
		return zero, common.NewError(common.ErrCodeBusinessState, "Bình luận đã được trả lời", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, commentID, bson.M{"$set": bson.M{
		"replied":      true,
		"needsReply":   false,
		"replyContent": input.Content,
		"replyTime":    time.Now().UnixMilli(),
	}})
}

// ListByPost liệt kê bình luận của một bài đăng, mới nhất trước
func (s *CommentService) ListByPost(ctx context.Context, userID, postID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Comment], error) {
	filter := bson.M{"userId": userID, "postId": postID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
