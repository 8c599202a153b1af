// Package common - Test nhận diện và chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateWriteException() mongo.WriteException {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil không phải duplicate", nil, false},
		{"Lỗi thường không phải duplicate", errors.New("connection reset"), false},
		{"WriteException code 11000 là duplicate", duplicateWriteException(), true},
		{"WriteException code khác không phải duplicate", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121}}}, false},
		{"BulkWriteException code 11000 là duplicate", mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{{WriteError: mongo.WriteError{Code: 11000}}}}, true},
		{"ErrDuplicate đã chuẩn hóa vẫn nhận diện được", ErrDuplicate, true},
	}

	for _, tc := range cases {
		if got := IsDuplicateKeyError(tc.err); got != tc.want {
			t.Errorf("%s: IsDuplicateKeyError = %v, muốn %v", tc.name, got, tc.want)
		}
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("Nil phải trả về nil, nhận được %v", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải chuyển thành ErrNotFound, nhận được %v", got)
	}

	if got := ConvertMongoError(duplicateWriteException()); !errors.Is(got, ErrDuplicate) {
		t.Errorf("Lỗi duplicate key phải chuyển thành ErrDuplicate, nhận được %v", got)
	}

	// Lỗi đã chuẩn hóa giữ nguyên, không convert lại
	original := NewError(ErrCodeBusinessState, "Vượt giới hạn gói", StatusForbidden, nil)
	if got := ConvertMongoError(original); got != original {
		t.Errorf("Lỗi đã chuẩn hóa phải được giữ nguyên, nhận được %v", got)
	}

	var appErr *Error
	if got := ConvertMongoError(errors.New("something broke")); !errors.As(got, &appErr) {
		t.Errorf("Lỗi không xác định phải được bọc thành *Error, nhận được %v", got)
	}
}

func TestErrDuplicateShape(t *testing.T) {
	dup, ok := ErrDuplicate.(*Error)
	if !ok {
		t.Fatalf("ErrDuplicate phải là *Error, nhận được %T", ErrDuplicate)
	}
	if dup.StatusCode != StatusConflict {
		t.Errorf("ErrDuplicate phải mang status %d, nhận được %d", StatusConflict, dup.StatusCode)
	}
	if dup.Code.Code != ErrCodeDatabaseQuery.Code {
		t.Errorf("ErrDuplicate phải mang mã %s, nhận được %s", ErrCodeDatabaseQuery.Code, dup.Code.Code)
	}
}
