// Package basehdl cung cấp các handler CRUD cơ bản và tiện ích xử lý request/response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "social_manager/internal/api/base/service"
	"social_manager/internal/common"
	"social_manager/internal/global"
)

// Các trường bị cấm filter vì lý do bảo mật
var deniedFilterFields = []string{
	"password",
	"passwordHash",
	"token",
	"secret",
	"accessToken",
}

// BaseHandler cung cấp các endpoint đọc/xóa cơ bản cho một model.
// Các thao tác ghi có nghiệp vụ riêng (chuyển trạng thái, ingest) nằm ở handler domain.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
type BaseHandler[T any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T] {
	return &BaseHandler[T]{
		BaseService: baseService,
	}
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParsePagination parse thông tin phân trang từ query string.
// page mặc định 1, limit mặc định 10.
func ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// ParseObjectIDParam lấy và validate ObjectID từ URI params
func ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số '%s' không được để trống trong URL params", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return oid, nil
}

// ProcessFilter parse và validate filter từ query string.
// Các string có format ObjectId trong field kết thúc bằng "Id" được chuyển thành ObjectID.
func ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Giá trị filter nhận được: %s", filterStr),
			common.StatusBadRequest,
			err.Error(),
		)
	}

	for field := range filter {
		for _, denied := range deniedFilterFields {
			if field == denied {
				return nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	return normalizeFilter(filter), nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID" (case-insensitive).
func normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{}, len(filter))
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = normalizeFilterValue(value, isIDField)
	}
	return normalized
}

func normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
				return objID
			}
		}
		return strValue
	}

	// Xử lý đệ quy cho operator ($in, $eq, ...) và mảng giá trị
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{}, len(mapValue))
		for key, val := range mapValue {
			normalizedMap[key] = normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	return value
}

// FindOneById tìm một document theo ID từ URI params
func (h *BaseHandler[T]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo điều kiện filter từ query string
func (h *BaseHandler[T]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, mongoopts.Find())
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		// Luôn trả về mảng rỗng thay vì null khi không có kết quả
		if data == nil {
			data = []T{}
		}

		HandleResponse(c, data, nil)
		return nil
	})
}

// FindWithPagination tìm nhiều document với phân trang.
// Query params: filter (JSON), page (mặc định 1), limit (mặc định 10).
func (h *BaseHandler[T]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		page, limit := ParsePagination(c)

		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		HandleResponse(c, data, err)
		return nil
	})
}

// CountDocuments đếm số lượng document theo điều kiện filter
func (h *BaseHandler[T]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		HandleResponse(c, count, err)
		return nil
	})
}

// DeleteById xóa một document theo ID từ URI params
func (h *BaseHandler[T]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteOne(c.Context(), map[string]interface{}{"_id": id})
		HandleResponse(c, nil, err)
		return nil
	})
}
