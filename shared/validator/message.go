package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"dateonly": "{field} must be a date formatted as YYYY-MM-DD",
		"timeslot": "{field} must be a time slot formatted as HH:MM-HH:MM",
		"dive":     "{field} contains an invalid item",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
