// Binary migrate chuẩn bị database: tạo collection, index và dữ liệu mẫu.
// Chạy một lần, không nhận tham số. Kết nối thất bại exit 1, các bước còn lại
// best effort: lỗi được log và bỏ qua.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"social_manager/config"
	analyticsmodels "social_manager/internal/api/analytics/models"
	authmodels "social_manager/internal/api/auth/models"
	commentmodels "social_manager/internal/api/comment/models"
	contentmodels "social_manager/internal/api/content/models"
	"social_manager/internal/api/initsvc"
	"social_manager/internal/database"
	"social_manager/internal/logger"
)

// stepResult kết quả của một bước migration
type stepResult struct {
	Name string
	Err  error
}

func main() {
	if err := logger.Init(nil); err != nil {
		fmt.Printf("Không thể khởi tạo logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Error("Không đọc được cấu hình")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Kết nối thất bại là fatal, các bước sau đều cần database
	client, err := database.GetInstance(cfg)
	if err != nil {
		log.WithFields(logrus.Fields{
			"uri":   cfg.MongoDB_ConnectionURI,
			"error": err.Error(),
		}).Error("Kết nối MongoDB thất bại")
		os.Exit(1)
	}
	defer func() {
		if err := database.CloseInstance(client); err != nil {
			log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Đóng kết nối MongoDB thất bại")
		}
	}()

	store := database.NewStore(client, cfg.MongoDB_DBName, database.DefaultCollectionNames())

	var results []stepResult
	results = append(results, stepResult{Name: "ensure_collections", Err: store.EnsureCollections(ctx)})
	results = append(results, ensureIndexes(ctx, store)...)
	results = append(results, stepResult{Name: "seed_sample_data", Err: seedSampleData(ctx, store)})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.WithFields(logrus.Fields{
				"step":  r.Name,
				"error": r.Err.Error(),
			}).Error("Bước migration thất bại")
		} else {
			log.WithFields(logrus.Fields{"step": r.Name}).Info("Bước migration hoàn thành")
		}
	}

	// Các bước sau kết nối là best effort: lỗi đã log, vẫn exit 0
	log.WithFields(logrus.Fields{
		"total":  len(results),
		"failed": failed,
	}).Info("Migration kết thúc")
}

// ensureIndexes tạo index từ struct tag `index` của từng model.
// Lỗi của từng collection được thu lại, không chặn collection khác.
func ensureIndexes(ctx context.Context, store *database.Store) []stepResult {
	indexTargets := []struct {
		name  string
		model interface{}
	}{
		{store.Names.Accounts, authmodels.Account{}},
		{store.Names.Posts, contentmodels.Post{}},
		{store.Names.AnalyticsSnapshots, analyticsmodels.AnalyticsSnapshot{}},
		{store.Names.Comments, commentmodels.Comment{}},
	}

	results := make([]stepResult, 0, len(indexTargets))
	for _, target := range indexTargets {
		stepName := "ensure_indexes_" + target.name

		coll, err := store.Collection(target.name)
		if err != nil {
			results = append(results, stepResult{Name: stepName, Err: err})
			continue
		}
		results = append(results, stepResult{Name: stepName, Err: database.CreateIndexes(ctx, coll, target.model)})
	}
	return results
}

// seedSampleData tạo dữ liệu mẫu khi database còn trống
func seedSampleData(ctx context.Context, store *database.Store) error {
	initService, err := initsvc.NewInitService(store)
	if err != nil {
		return err
	}
	return initService.SeedSampleData(ctx)
}
