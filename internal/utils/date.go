package utils

import (
	"strings"
	"time"

	"github.com/yukikurage/project-tracker/internal/constants"
	"gorm.io/datatypes"
)

// ParseDate parses a YYYY-MM-DD value. Empty or malformed input yields nil.
func ParseDate(value string) *datatypes.Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

// FormatDate renders a date as YYYY-MM-DD, or nil when unset.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(constants.DateLayout)
	return &s
}

// NullableString turns an empty string into nil.
func NullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
