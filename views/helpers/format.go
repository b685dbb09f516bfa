package helpers

import (
	"database/sql"
	"fmt"
	"time"
)

// FormatInt formats an integer as a string
func FormatInt(n int64) string {
	return fmt.Sprintf("%d", n)
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// FormatNullTime formats a sql.NullTime, returning default value if null
func FormatNullTime(t sql.NullTime, layout string, defaultVal string) string {
	if t.Valid {
		return t.Time.Format(layout)
	}
	return defaultVal
}

// FormatNullString returns the string value or a default if null
func FormatNullString(s sql.NullString, defaultVal string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return defaultVal
}
