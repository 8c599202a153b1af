// Package basesvc cung cấp service CRUD cơ bản cho việc tương tác với MongoDB.
package basesvc

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "social_manager/internal/api/base/models"
	"social_manager/internal/common"
	"social_manager/internal/utility"
)

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc
// tương tác với MongoDB.
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	// Thao tác Find
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	// Thao tác Update/Delete
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	DeleteOne(ctx context.Context, filter interface{}) error

	// Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl triển khai BaseServiceMongo trên một collection cụ thể
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl trên collection được truyền vào
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng khi domain service cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// prepareInsertDocument áp dụng default, chuyển model thành map và gắn timestamps.
// Field string rỗng bị loại bỏ để sparse unique index hoạt động đúng:
// sparse index chỉ bỏ qua field null/không tồn tại, không bỏ qua empty string.
func prepareInsertDocument[T any](data *T, now int64) (map[string]interface{}, error) {
	ApplyInsertDefaults(data)

	dataMap, err := utility.ToMap(*data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now
	return dataMap, nil
}

// InsertOne tạo mới một bản ghi trong database
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := prepareInsertDocument(&data, time.Now().UnixMilli())
	if err != nil {
		return zero, err
	}

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// InsertMany tạo nhiều bản ghi trong database
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	now := time.Now().UnixMilli()

	var documents []interface{}
	for i := range data {
		dataMap, err := prepareInsertDocument(&data[i], now)
		if err != nil {
			return nil, err
		}
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Lấy lại các documents vừa tạo, giữ nguyên thứ tự insert
	filter := bson.M{"_id": bson.M{"$in": result.InsertedIDs}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	byID := make(map[interface{}]T, len(result.InsertedIDs))
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		if id := extractObjectID(item); id != nil {
			byID[*id] = item
		}
	}

	created := make([]T, 0, len(result.InsertedIDs))
	for _, insertedID := range result.InsertedIDs {
		if oid, ok := insertedID.(primitive.ObjectID); ok {
			if item, found := byID[oid]; found {
				created = append(created, item)
			}
		}
	}
	return created, nil
}

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	var result T
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm nhiều documents theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOneById tìm một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindWithPagination tìm documents với phân trang
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	itemCount, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts = opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: itemCount,
		Items:     items,
	}, nil
}

// UpdateOne cập nhật một document theo điều kiện lọc và trả về bản ghi sau cập nhật
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	updateDoc, err := toUpdateDocument(update)
	if err != nil {
		return zero, err
	}

	if _, err := s.collection.UpdateOne(ctx, filter, updateDoc, opts); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return s.FindOne(ctx, filter, nil)
}

// UpdateById cập nhật một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

// DeleteOne xóa một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountDocuments đếm số documents theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra document có tồn tại theo điều kiện lọc hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// toUpdateDocument chuẩn hóa update data: map thường được wrap trong $set,
// update đã có operator ($set, $unset, $push, ...) giữ nguyên, kèm updatedAt.
func toUpdateDocument(update interface{}) (interface{}, error) {
	now := time.Now().UnixMilli()

	dataMap, err := utility.ToMap(update)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	hasOperator := false
	for key := range dataMap {
		if strings.HasPrefix(key, "$") {
			hasOperator = true
			break
		}
	}

	if hasOperator {
		setVal, ok := dataMap["$set"].(map[string]interface{})
		if !ok {
			setVal = map[string]interface{}{}
		}
		setVal["updatedAt"] = now
		dataMap["$set"] = setVal
		return dataMap, nil
	}

	dataMap["updatedAt"] = now
	return bson.M{"$set": dataMap}, nil
}

// extractObjectID lấy giá trị ObjectID từ field bson `_id` của model (nếu có)
func extractObjectID(item interface{}) *primitive.ObjectID {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	rt := v.Type()
	for i := 0; i < rt.NumField(); i++ {
		bsonTag := rt.Field(i).Tag.Get("bson")
		if strings.Split(bsonTag, ",")[0] != "_id" {
			continue
		}
		if oid, ok := v.Field(i).Interface().(primitive.ObjectID); ok {
			return &oid
		}
	}
	return nil
}

// ApplyInsertDefaults đọc struct tag `default` trên model và set giá trị mặc định
// cho các field đang là zero value, đệ quy vào các struct lồng nhau.
// Hỗ trợ: bool, int các loại, float, string (và các kiểu string có tên như enum).
func ApplyInsertDefaults(ptr interface{}) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	applyDefaultsToValue(v.Elem())
}

func applyDefaultsToValue(struc reflect.Value) {
	if struc.Kind() != reflect.Struct {
		return
	}
	rt := struc.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fieldVal := struc.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		// Đệ quy vào struct lồng nhau (trừ time.Time và các struct ngoài)
		if fieldVal.Kind() == reflect.Struct && field.Type.PkgPath() != "time" {
			applyDefaultsToValue(fieldVal)
			continue
		}

		defaultStr := field.Tag.Get("default")
		if defaultStr == "" || !fieldVal.IsZero() {
			continue
		}

		setDefaultValue(fieldVal, defaultStr)
	}
}

func setDefaultValue(fieldVal reflect.Value, defaultStr string) {
	switch fieldVal.Kind() {
	case reflect.Bool:
		if b, err := strconv.ParseBool(defaultStr); err == nil {
			fieldVal.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(defaultStr, 10, 64); err == nil {
			fieldVal.SetInt(n)
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(defaultStr, 64); err == nil {
			fieldVal.SetFloat(f)
		}
	case reflect.String:
		fieldVal.SetString(defaultStr)
	}
}
