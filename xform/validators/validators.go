// Package validators provides a handful of ready-made xform.Validator
// and xform.CrossFieldValidator implementations for common cases.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/corewireui/retcore/xform"
)

// Required rejects a nil value, a non-string value, or a string that
// is empty once trimmed.
func Required(message ...string) xform.Validator {
	msg := "This field is required"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(value any) error {
		str, ok := value.(string)
		if !ok || strings.TrimSpace(str) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// MinLength rejects a string shorter than n.
func MinLength(n int, message ...string) xform.Validator {
	msg := fmt.Sprintf("Must be at least %d characters", n)
	if len(message) > 0 {
		msg = message[0]
	}
	return func(value any) error {
		str, _ := value.(string)
		if len(str) < n {
			return errors.New(msg)
		}
		return nil
	}
}

// MaxLength rejects a string longer than n.
func MaxLength(n int, message ...string) xform.Validator {
	msg := fmt.Sprintf("Must be at most %d characters", n)
	if len(message) > 0 {
		msg = message[0]
	}
	return func(value any) error {
		str, _ := value.(string)
		if len(str) > n {
			return errors.New(msg)
		}
		return nil
	}
}

// Pattern rejects a value that doesn't match re.
func Pattern(re *regexp.Regexp, message string) xform.Validator {
	return func(value any) error {
		str, _ := value.(string)
		if !re.MatchString(str) {
			return errors.New(message)
		}
		return nil
	}
}

// FieldsMatch rejects a values map where field1 and field2 differ.
func FieldsMatch(field1, field2 string, message ...string) xform.CrossFieldValidator {
	msg := fmt.Sprintf("Fields %s and %s must match", field1, field2)
	if len(message) > 0 {
		msg = message[0]
	}
	return func(values map[string]any) error {
		v1, ok1 := values[field1]
		v2, ok2 := values[field2]
		if !ok1 || !ok2 {
			return nil
		}
		if fmt.Sprintf("%v", v1) != fmt.Sprintf("%v", v2) {
			return errors.New(msg)
		}
		return nil
	}
}

// DateRange rejects a values map where endField's date is not after
// startField's, both parsed as YYYY-MM-DD or RFC3339.
func DateRange(startField, endField string, message ...string) xform.CrossFieldValidator {
	msg := "End date must be after start date"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(values map[string]any) error {
		startStr, ok1 := values[startField].(string)
		endStr, ok2 := values[endField].(string)
		if !ok1 || !ok2 || startStr == "" || endStr == "" {
			return nil
		}
		start, err1 := parseDate(startStr)
		end, err2 := parseDate(endStr)
		if err1 != nil || err2 != nil {
			return nil
		}
		if !end.After(start) {
			return errors.New(msg)
		}
		return nil
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// NumericRange rejects a values map where maxField's number is not
// greater than minField's.
func NumericRange(minField, maxField string, message ...string) xform.CrossFieldValidator {
	msg := "Maximum value must be greater than minimum value"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(values map[string]any) error {
		minStr, ok1 := values[minField].(string)
		maxStr, ok2 := values[maxField].(string)
		if !ok1 || !ok2 || minStr == "" || maxStr == "" {
			return nil
		}
		minNum, err1 := strconv.ParseFloat(minStr, 64)
		maxNum, err2 := strconv.ParseFloat(maxStr, 64)
		if err1 != nil || err2 != nil {
			return nil
		}
		if maxNum <= minNum {
			return errors.New(msg)
		}
		return nil
	}
}

// ConditionalRequired rejects a values map where dependentField is
// empty while triggerField equals triggerValue.
func ConditionalRequired(dependentField, triggerField, triggerValue string, message ...string) xform.CrossFieldValidator {
	msg := fmt.Sprintf("This field is required when %s is %s", triggerField, triggerValue)
	if len(message) > 0 {
		msg = message[0]
	}
	return func(values map[string]any) error {
		triggerVal, ok := values[triggerField]
		if !ok || fmt.Sprintf("%v", triggerVal) != triggerValue {
			return nil
		}
		dependentVal, ok := values[dependentField]
		if !ok || dependentVal == nil {
			return errors.New(msg)
		}
		if str, ok := dependentVal.(string); ok && strings.TrimSpace(str) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// AtLeastOneRequired rejects a values map where every named field is
// empty.
func AtLeastOneRequired(fields []string, message ...string) xform.CrossFieldValidator {
	msg := "At least one of these fields is required"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(values map[string]any) error {
		for _, f := range fields {
			if str, ok := values[f].(string); ok && strings.TrimSpace(str) != "" {
				return nil
			}
		}
		return errors.New(msg)
	}
}
