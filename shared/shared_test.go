package shared_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "upper case false", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	value, err := shared.ConvertStringToInt(" 4 ")
	assert.NoError(t, err)
	assert.Equal(t, 4, value)

	_, err = shared.ConvertStringToInt("four")
	assert.Error(t, err)
}

func TestConvertStringToFloat(t *testing.T) {
	value, err := shared.ConvertStringToFloat("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = shared.ConvertStringToFloat("149.5")
	assert.NoError(t, err)
	assert.InDelta(t, 149.5, *value, 0.0001)

	_, err = shared.ConvertStringToFloat("cheap")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Number   string   `db:"number"`
		Type     string   `db:"type"`
		Rate     *float64 `db:"rate"`
		Capacity *int     `db:"capacity"`
		Note     string
	}

	rate := 180.0
	zero := 0

	result := shared.TransformFields(roomPatch{
		Number:   "101",
		Rate:     &rate,
		Capacity: &zero,
		Note:     "not persisted",
	}, "admin-id")

	assert.Equal(t, "101", result["number"])
	assert.Equal(t, &rate, result["rate"])
	assert.Equal(t, &zero, result["capacity"])
	assert.NotContains(t, result, "type")
	assert.NotContains(t, result, "Note")
	assert.Equal(t, "admin-id", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("room-1", "id", "rooms")

	assert.Len(t, result.Filters, 1)

	filter, ok := result.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "room-1", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "rooms", filter.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	cheap := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "rate", Operator: dto.FilterOperatorLessEq, Value: 100, Table: "rooms"},
		},
	}
	pricey := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "rate", Operator: dto.FilterOperatorLessEq, Value: 500, Table: "rooms"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, cheap)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, cheap)
	third := shared.BuildCacheKeyWithQuery("room:gets", params, pricey)

	assert.True(t, strings.HasPrefix(first, "room:gets:"))
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, third)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "room:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "room:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func TestIsPqErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to insert data (room): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

	assert.True(t, shared.IsPqErrorCode(wrapped, constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqErrorCode(wrapped, constant.PqErrorCodeFkViolation))
	assert.False(t, shared.IsPqErrorCode(errors.New("plain"), constant.PqErrorCodeUniqueViolation))
}
