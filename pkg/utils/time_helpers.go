package utils

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func IntPtr(i int) *int { return &i }

func StringPtr(s string) *string { return &s }

func BoolPtr(b bool) *bool { return &b }
