package shared

import (
	"context"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return intValue, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into a column map for updates.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return model.Modified(username, updatedFields)
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByIDs matches any of ids. An empty list yields a filter that matches nothing.
func FilterByIDs(ids []string, fieldID, table string) dto.FilterGroup {
	if len(ids) == 0 {
		return dto.FilterGroup{
			Filters: []any{
				dto.Filter{Operator: dto.FilterPlainQuery, Value: "1 = 0"},
			},
		}
	}

	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    ids,
				Operator: dto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts into a colon separated key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from pagination params and a filter group.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	parts := []string{
		"page=" + strconv.Itoa(params.Page),
		"limit=" + strconv.Itoa(params.Limit),
		"sort=" + params.SortBy + " " + params.SortDir,
	}

	where, args := filter.GetWhereClause()
	if where != "" {
		keys := make([]string, 0, len(args))
		for key := range args {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", key, args[key]))
		}

		parts = append(parts, "where="+where)
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or a full RFC 3339 timestamp and
// returns the calendar date at UTC midnight. A timestamp keeps the date of its own offset.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(constant.DateOnlyFormat, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
