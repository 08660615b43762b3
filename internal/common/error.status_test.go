// Package common - Test mapping lỗi MongoDB sang taxonomy lỗi của hệ thống.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("nil phải trả về nil, nhận %v", err)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải map sang ErrNotFound, nhận %v", err)
	}
}

func TestConvertMongoError_PreservesAppError(t *testing.T) {
	out := ConvertMongoError(ErrInvalidID)
	if !errors.Is(out, ErrInvalidID) {
		t.Errorf("lỗi taxonomy phải được giữ nguyên, nhận %v", out)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}},
	}
	err := ConvertMongoError(dup)
	if !errors.Is(err, ErrMongoDuplicate) {
		t.Errorf("lỗi duplicate key phải map sang ErrMongoDuplicate, nhận %v", err)
	}
}

func TestConvertMongoError_UnknownWrapped(t *testing.T) {
	err := ConvertMongoError(fmt.Errorf("socket closed"))
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không nhận diện được phải bọc thành *Error, nhận %T", err)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("status phải là %d, nhận %d", StatusInternalServerError, appErr.StatusCode)
	}
}

func TestErrorStatusCodes(t *testing.T) {
	var notFound *Error
	if !errors.As(ErrNotFound, &notFound) || notFound.StatusCode != StatusNotFound {
		t.Errorf("ErrNotFound phải có status %d", StatusNotFound)
	}
	var dup *Error
	if !errors.As(ErrMongoDuplicate, &dup) || dup.StatusCode != StatusConflict {
		t.Errorf("ErrMongoDuplicate phải có status %d", StatusConflict)
	}
}
