package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"social_manager/internal/logger"
)

// parseOrder trích xuất thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(tag string) int {
	if strings.Contains(tag, "order:-1") {
		return -1
	}
	return 1
}

// parseIndexTag phân tách và phân tích tag index.
// Mỗi cấu hình phân cách bởi ';', mỗi thuộc tính trong cấu hình phân cách bởi ','.
// Ví dụ: `index:"unique,sparse"`, `index:"single:1"`, `index:"compound:userId_date_platform"`.
func parseIndexTag(tag string) []map[string]string {
	parts := strings.Split(tag, ";")
	result := []map[string]string{}

	for _, part := range parts {
		subParts := strings.Split(part, ",")
		entry := map[string]string{}
		for _, subPart := range subParts {
			kv := strings.Split(subPart, ":")
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}

	return result
}

// createIndexIfMissing tạo index nếu chưa tồn tại index cùng tên.
// Index cùng tên đã tồn tại được coi là đúng cấu hình và bỏ qua (idempotent re-run).
func createIndexIfMissing(
	ctx context.Context,
	collection *mongo.Collection,
	existingIndexes map[string]bson.M,
	indexName string,
	keys bson.D,
	opts *options.IndexOptions,
) error {
	if _, exists := existingIndexes[indexName]; exists {
		logger.GetAppLogger().Debugf("Index %s đã tồn tại, bỏ qua", indexName)
		return nil
	}

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}); err != nil {
		return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
	}
	logger.GetAppLogger().Infof("Đã tạo index %s trên collection %s", indexName, collection.Name())
	return nil
}

// CreateIndexes đọc tag `index` trên model và tạo các index tương ứng cho collection.
// Hỗ trợ các cấu hình:
//   - unique: unique index, thêm ",sparse" để bỏ qua document không có field
//   - single: index đơn, "single:1" tăng dần / order:-1 giảm dần
//   - compound:<tên_nhóm>: các field cùng tên nhóm gộp thành một compound index
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	// Lấy danh sách index hiện có
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}

	compoundGroups := map[string]bson.D{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.TrimSpace(strings.Split(field.Tag.Get("bson"), ",")[0])
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, config := range parseIndexTag(tag) {
			if _, ok := config["unique"]; ok {
				keys := bson.D{{Key: bsonField, Value: 1}}
				indexName := bsonField + "_unique"
				opts := options.Index().SetName(indexName).SetUnique(true)

				// Sparse index bỏ qua document không có field này,
				// cần cho platformCommentId (comment chưa đồng bộ không có id ngoài)
				if _, hasSparse := config["sparse"]; hasSparse {
					opts = opts.SetSparse(true)
				}

				if err := createIndexIfMissing(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if _, ok := config["single"]; ok {
				order := parseOrder(tag)
				keys := bson.D{{Key: bsonField, Value: order}}
				indexName := bsonField + "_single"
				opts := options.Index().SetName(indexName)

				if err := createIndexIfMissing(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if groupName, ok := config["compound"]; ok && groupName != "" {
				order := parseOrder(tag)
				compoundGroups[groupName] = append(compoundGroups[groupName], bson.E{Key: bsonField, Value: order})
			}
		}
	}

	// Tạo các compound index sau khi đã gom đủ field theo nhóm
	for groupName, fields := range compoundGroups {
		opts := options.Index().SetName(groupName)
		if err := createIndexIfMissing(ctx, collection, existingIndexes, groupName, fields, opts); err != nil {
			return err
		}
	}

	return nil
}
