package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
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

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
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

// ParseStayRange parses check-in/check-out date strings and enforces the
// caller-input preconditions: both parse as YYYY-MM-DD and checkIn < checkOut.
func ParseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := time.Parse(constant.StayDateFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	end, err := time.Parse(constant.StayDateFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_in must be before check_out") //nolint:wrapcheck
	}

	return start, end, nil
}

// ParseUpcomingStayRange parses a stay range and additionally rejects a
// check-in earlier than today in the application timezone. Availability is
// only answerable for stays that have not started yet.
func ParseUpcomingStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, end, err := ParseStayRange(checkIn, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	now := timezone.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_in must not be in the past") //nolint:wrapcheck
	}

	return start, end, nil
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encodedArgs, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal filter args for cache key")
	}

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%s", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, encodedArgs)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
