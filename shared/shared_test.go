package shared_test

import (
	"context"
	"errors"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"testing"
	"time"

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
		{name: "zero", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "available", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	value, err := shared.ConvertStringToInt(" 12 ")
	assert.NoError(t, err)
	assert.Equal(t, 12, value)

	_, err = shared.ConvertStringToInt("twelve")
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
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type statusUpdate struct {
		Status        string `db:"status"`
		PaymentStatus string `db:"payment_status"`
		Note          string
	}

	result := shared.TransformFields(statusUpdate{Status: "confirmed", Note: "ignored"}, "admin-1")

	assert.Equal(t, "confirmed", result["status"])
	assert.NotContains(t, result, "payment_status")
	assert.NotContains(t, result, "Note")
	assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByIDs(t *testing.T) {
	where, args := func() (string, map[string]any) {
		group := shared.FilterByIDs([]string{"a", "b"}, "id", "rooms")

		return group.GetWhereClause()
	}()

	assert.Contains(t, where, "rooms.id IN (:id_0, :id_1)")
	assert.Equal(t, "a", args["id_0"])
	assert.Equal(t, "b", args["id_1"])

	empty := shared.FilterByIDs(nil, "id", "rooms")
	where, _ = empty.GetWhereClause()
	assert.Equal(t, "((1 = 0))", where)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:42", shared.BuildCacheKey("room:get", "42"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "category", Value: "Dessert", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "available", Value: true, Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("food:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("food:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "food:gets:page=1:limit=10")
	assert.Contains(t, first, "category=Dessert")

	other := shared.BuildCacheKeyWithQuery("food:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	assert.NotEqual(t, first, other)
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

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 keeps only the date", input: "2024-01-03T12:00:00Z", want: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "offset decides the date", input: "2024-01-03T23:30:00-05:00", want: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
