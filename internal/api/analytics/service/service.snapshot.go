// Package analyticssvc - service ghi nhận và truy vấn ảnh chụp số liệu.
package analyticssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "social_manager/internal/api/base/models"
	basesvc "social_manager/internal/api/base/service"
	"social_manager/internal/api/analytics/dto"
	"social_manager/internal/api/analytics/models"
	"social_manager/internal/common"
	"social_manager/internal/database"
	"social_manager/internal/global"
)

// SnapshotService xử lý nghiệp vụ ảnh chụp số liệu.
// Snapshot là immutable: service chỉ cung cấp insert và truy vấn, không có update.
type SnapshotService struct {
	*basesvc.BaseServiceMongoImpl[models.AnalyticsSnapshot]
}

// NewSnapshotService tạo mới SnapshotService trên collection analyticssnapshots của store
func NewSnapshotService(store *database.Store) (*SnapshotService, error) {
	coll, err := store.Collection(store.Names.AnalyticsSnapshots)
	if err != nil {
		return nil, fmt.Errorf("lấy collection analyticssnapshots: %w", err)
	}
	return &SnapshotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AnalyticsSnapshot](coll),
	}, nil
}

// Ingest ghi nhận một ảnh chụp số liệu mới
func (s *SnapshotService) Ingest(ctx context.Context, userID primitive.ObjectID, input *dto.IngestSnapshotInput) (models.AnalyticsSnapshot, error) {
	var zero models.AnalyticsSnapshot

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	date := input.Date
	if date == 0 {
		date = time.Now().UnixMilli()
	}

	snapshot := models.AnalyticsSnapshot{
		UserID:        userID,
		Date:          date,
		Platform:      input.Platform,
		Followers:     input.Followers,
		Impressions:   input.Impressions,
		Reach:         input.Reach,
		ProfileViews:  input.ProfileViews,
		WebsiteClicks: input.WebsiteClicks,
		Engagement:    input.Engagement,
	}

	return s.InsertOne(ctx, snapshot)
}

// Query truy vấn snapshot của tài khoản theo platform và khoảng thời gian, mới nhất trước
func (s *SnapshotService) Query(ctx context.Context, userID primitive.ObjectID, query *dto.SnapshotQuery) ([]models.AnalyticsSnapshot, error) {
	if err := global.Validate.Struct(query); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	filter := bson.M{"userId": userID}
	if query.Platform != "" {
		filter["platform"] = query.Platform
	}

	dateRange := bson.M{}
	if query.From > 0 {
		dateRange["$gte"] = query.From
	}
	if query.To > 0 {
		dateRange["$lte"] = query.To
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	snapshots, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []models.AnalyticsSnapshot{}
	}
	return snapshots, nil
}

// LatestPerPlatform trả về snapshot mới nhất của từng platform cho dashboard
func (s *SnapshotService) LatestPerPlatform(ctx context.Context, userID primitive.ObjectID) (map[basemodels.AnalyticsPlatform]models.AnalyticsSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	snapshots, err := s.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	latest := make(map[basemodels.AnalyticsPlatform]models.AnalyticsSnapshot)
	for _, snapshot := range snapshots {
		if _, seen := latest[snapshot.Platform]; !seen {
			latest[snapshot.Platform] = snapshot
		}
	}
	return latest, nil
}
