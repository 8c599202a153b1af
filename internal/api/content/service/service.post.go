// Package contentsvc - service xử lý vòng đời bài đăng: nháp, lên lịch, publish, metrics.
package contentsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "social_manager/internal/api/base/models"
	basesvc "social_manager/internal/api/base/service"
	"social_manager/internal/api/content/dto"
	"social_manager/internal/api/content/models"
	"social_manager/internal/common"
	"social_manager/internal/database"
	"social_manager/internal/global"
	"social_manager/internal/graph"
	"social_manager/internal/logger"
)

// LimitProvider cung cấp hạn mức bài đăng được lên lịch theo tài khoản
type LimitProvider interface {
	ScheduledPostLimit(ctx context.Context, accountID primitive.ObjectID) (int, error)
}

// PostService xử lý nghiệp vụ bài đăng
type PostService struct {
	*basesvc.BaseServiceMongoImpl[models.Post]
	graphClient *graph.Client
	limits      LimitProvider
}

// NewPostService tạo mới PostService trên collection posts của store.
// graphClient có thể nil (publish khi đó chỉ ghi nhận platformIds từ input).
func NewPostService(store *database.Store, graphClient *graph.Client, limits LimitProvider) (*PostService, error) {
	coll, err := store.Collection(store.Names.Posts)
	if err != nil {
		return nil, fmt.Errorf("lấy collection posts: %w", err)
	}
	return &PostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Post](coll),
		graphClient:          graphClient,
		limits:               limits,
	}, nil
}

// findOwnedPost tìm bài đăng thuộc về tài khoản
func (s *PostService) findOwnedPost(ctx context.Context, userID, postID primitive.ObjectID) (models.Post, error) {
	return s.FindOne(ctx, bson.M{"_id": postID, "userId": userID}, nil)
}

// CreateDraft tạo bài đăng nháp mới
func (s *PostService) CreateDraft(ctx context.Context, userID primitive.ObjectID, input *dto.CreatePostInput) (models.Post, error) {
	var zero models.Post

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Nội dung bài đăng không được để trống", common.StatusBadRequest, nil)
	}

	post := models.Post{
		UserID:    userID,
		Content:   content,
		Platforms: input.Platforms,
		Type:      input.Type,
		MediaURL:  input.MediaURL,
		AIGenerated: models.AIGenerated{
			Caption:  input.AICaption,
			Hashtags: input.AIHashtags,
		},
	}
	if post.AIGenerated.Hashtags == nil {
		post.AIGenerated.Hashtags = []string{}
	}

	return s.InsertOne(ctx, post)
}

// Schedule chuyển bài đăng draft → scheduled với thời điểm trong tương lai.
// Số bài đang scheduled bị giới hạn bởi subscription.limits.scheduledPosts.
func (s *PostService) Schedule(ctx context.Context, userID, postID primitive.ObjectID, input *dto.SchedulePostInput) (models.Post, error) {
	var zero models.Post

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	if input.ScheduledTime <= time.Now().UnixMilli() {
		return zero, common.NewError(common.ErrCodeValidationInput, "Thời điểm lên lịch phải ở tương lai", common.StatusBadRequest, nil)
	}

	post, err := s.findOwnedPost(ctx, userID, postID)
	if err != nil {
		return zero, err
	}
	if !post.CanTransitionTo(basemodels.PostStatusScheduled) {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể lên lịch bài đăng đang ở trạng thái '%s'", post.Status),
			common.StatusBadRequest, nil)
	}

	if s.limits != nil {
		limit, err := s.limits.ScheduledPostLimit(ctx, userID)
		if err != nil {
			return zero, err
		}
		scheduled, err := s.CountDocuments(ctx, bson.M{
			"userId": userID,
			"status": basemodels.PostStatusScheduled,
		})
		if err != nil {
			return zero, err
		}
		if scheduled >= int64(limit) {
			return zero, common.NewError(common.ErrCodeBusinessOperation,
				fmt.Sprintf("Đã đạt hạn mức %d bài đăng được lên lịch của gói hiện tại", limit),
				common.StatusBadRequest, nil)
		}
	}

	return s.UpdateById(ctx, postID, bson.M{"$set": bson.M{
		"status":        basemodels.PostStatusScheduled,
		"scheduledTime": input.ScheduledTime,
	}})
}

// Publish chuyển bài đăng sang published, set publishedTime và platformIds.
// Cho phép draft → published (đăng ngay) và scheduled → published (job bên ngoài gọi khi đến giờ).
// Bài có platform facebook và graph client được cấu hình: đăng thật qua Graph API.
func (s *PostService) Publish(ctx context.Context, userID, postID primitive.ObjectID, input *dto.PublishPostInput) (models.Post, error) {
	var zero models.Post

	post, err := s.findOwnedPost(ctx, userID, postID)
	if err != nil {
		return zero, err
	}
	if !post.CanTransitionTo(basemodels.PostStatusPublished) {
		return zero, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể publish bài đăng đang ở trạng thái '%s'", post.Status),
			common.StatusBadRequest, nil)
	}

	platformIDs := post.PlatformIDs
	if input != nil {
		if id, ok := input.PlatformIDs[basemodels.PlatformInstagram]; ok {
			platformIDs.Instagram = id
		}
		if id, ok := input.PlatformIDs[basemodels.PlatformFacebook]; ok {
			platformIDs.Facebook = id
		}
	}

	// Đăng thật lên facebook khi chưa có platform ID từ input
	if platformIDs.Facebook == "" && s.graphClient != nil && s.graphClient.Configured() && hasPlatform(post.Platforms, basemodels.PlatformFacebook) {
		result, err := s.graphClient.Publish(ctx, graph.PublishInput{
			Message: post.Content,
			Link:    post.MediaURL,
		})
		if err != nil {
			// Publish thất bại: chuyển failed thay vì để treo ở trạng thái cũ
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"postId": postID.Hex(),
				"error":  err.Error(),
			}).Error("Publish bài đăng lên Graph API thất bại")
			if _, markErr := s.MarkFailed(ctx, userID, postID, err.Error()); markErr != nil {
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"postId": postID.Hex(),
					"error":  markErr.Error(),
				}).Error("Không thể chuyển bài đăng sang trạng thái failed")
			}
			return zero, err
		}
		platformIDs.Facebook = result.ID
	}

	return s.UpdateById(ctx, postID, bson.M{"$set": bson.M{
		"status":        basemodels.PostStatusPublished,
		"publishedTime": time.Now().UnixMilli(),
		"platformIds":   platformIDs,
	}})
}

// MarkFailed chuyển bài đăng sang trạng thái failed (từ bất kỳ trạng thái nào),
// lý do thất bại (nếu có) được ghi log để truy vết
func (s *PostService) MarkFailed(ctx context.Context, userID, postID primitive.ObjectID, reason string) (models.Post, error) {
	var zero models.Post

	if _, err := s.findOwnedPost(ctx, userID, postID); err != nil {
		return zero, err
	}

	if reason != "" {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"postId": postID.Hex(),
			"reason": reason,
		}).Warn("Bài đăng chuyển sang trạng thái failed")
	}

	return s.UpdateById(ctx, postID, bson.M{"$set": bson.M{
		"status": basemodels.PostStatusFailed,
	}})
}

// UpdateMetrics ghi nhận số liệu tương tác từ job đồng bộ metrics
func (s *PostService) UpdateMetrics(ctx context.Context, userID, postID primitive.ObjectID, input *dto.UpdateMetricsInput) (models.Post, error) {
	var zero models.Post

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	if _, err := s.findOwnedPost(ctx, userID, postID); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, postID, bson.M{"$set": bson.M{
		"metrics": models.PostMetrics{
			Likes:       input.Likes,
			Comments:    input.Comments,
			Shares:      input.Shares,
			Reach:       input.Reach,
			Impressions: input.Impressions,
			Engagement:  input.Engagement,
		},
	}})
}

// ListByUser liệt kê bài đăng của tài khoản với phân trang, lọc theo status/platform nếu có
func (s *PostService) ListByUser(ctx context.Context, userID primitive.ObjectID, status basemodels.PostStatus, platform basemodels.Platform, page, limit int64) (*basemodels.PaginateResult[models.Post], error) {
	filter := bson.M{"userId": userID}
	if status != "" {
		if !status.IsValid() {
			return nil, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Trạng thái '%s' không hợp lệ", status), common.StatusBadRequest, nil)
		}
		filter["status"] = status
	}
	if platform != "" {
		if !platform.IsValid() {
			return nil, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Platform '%s' không hợp lệ", platform), common.StatusBadRequest, nil)
		}
		filter["platforms"] = platform
	}

	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

func hasPlatform(platforms []basemodels.Platform, target basemodels.Platform) bool {
	for _, p := range platforms {
		if p == target {
			return true
		}
	}
	return false
}
