// Package utility chứa các hàm tiện ích chuyển đổi dữ liệu dùng chung.
package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua BSON marshal.
// Các field tôn trọng bson tag của model (omitempty, tên field, ...).
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}
