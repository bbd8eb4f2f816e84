package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plan"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq"`
	Table    string
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		vType := val.Type()

		switch vType.Kind() {
		case reflect.Array, reflect.Slice:
			named := make([]string, val.Len())

			for idx := range val.Len() {
				args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

				named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
			}

			return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
		default:
			return fmt.Sprintf("%s IN (%s) ", column, f.Value), args
		}
	case FilterOperatorNotEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s != :%s", column, argName), args
	case FilterOperatorLessEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s <= :%s", column, argName), args
	case FilterOperatorGreaterEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s >= :%s", column, argName), args
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return fmt.Sprintf("(%s)", query), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// NewFilterGroup starts an AND group.
func NewFilterGroup(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: append([]any{}, filters...)}
}

// Where appends filter unless its value is empty. Null checks and plain queries are always kept.
func (f *FilterGroup) Where(filter Filter) *FilterGroup {
	switch filter.Operator {
	case FilterIsNull, FilterIsNotNull, FilterPlainQuery:
	default:
		if isEmpty(filter.Value) {
			return f
		}
	}

	f.Filters = append(f.Filters, filter)

	return f
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	val := reflect.ValueOf(value)

	switch val.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return val.Len() == 0
	case reflect.Pointer:
		return val.IsNil()
	default:
		return false
	}
}

type whereClauser interface {
	GetWhereClause() (string, map[string]any)
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		clauser, ok := filter.(whereClauser)
		if !ok {
			continue
		}

		where, arg := clauser.GetWhereClause()
		if strings.TrimSpace(where) == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
