// Package analyticshdl - handler xử lý request HTTP cho domain analytics.
package analyticshdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "social_manager/internal/api/base/handler"
	basemodels "social_manager/internal/api/base/models"
	"social_manager/internal/api/analytics/dto"
	analyticssvc "social_manager/internal/api/analytics/service"
	"social_manager/internal/common"
)

// SnapshotHandler xử lý các request liên quan đến ảnh chụp số liệu
type SnapshotHandler struct {
	snapshotService *analyticssvc.SnapshotService
}

// NewSnapshotHandler tạo mới SnapshotHandler
func NewSnapshotHandler(snapshotService *analyticssvc.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
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

// HandleIngest ghi nhận một ảnh chụp số liệu mới
func (h *SnapshotHandler) HandleIngest(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.IngestSnapshotInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		snapshot, err := h.snapshotService.Ingest(c.Context(), userID, &input)
		basehdl.HandleResponse(c, snapshot, err)
		return nil
	})
}

// HandleQuery truy vấn snapshot theo platform/khoảng thời gian.
// Query params: platform, from, to (unix ms).
func (h *SnapshotHandler) HandleQuery(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		from, _ := strconv.ParseInt(c.Query("from", "0"), 10, 64)
		to, _ := strconv.ParseInt(c.Query("to", "0"), 10, 64)
		query := dto.SnapshotQuery{
			Platform: basemodels.AnalyticsPlatform(c.Query("platform", "")),
			From:     from,
			To:       to,
		}

		snapshots, err := h.snapshotService.Query(c.Context(), userID, &query)
		basehdl.HandleResponse(c, snapshots, err)
		return nil
	})
}

// HandleLatest trả về snapshot mới nhất của từng platform
func (h *SnapshotHandler) HandleLatest(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentAccountID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		latest, err := h.snapshotService.LatestPerPlatform(c.Context(), userID)
		basehdl.HandleResponse(c, latest, err)
		return nil
	})
}
