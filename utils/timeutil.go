package utils

import "time"

// 常用时间格式常量
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// FormatDate 格式化为日期字符串
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// FormatDateTime 格式化为日期时间字符串
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

// DateOnly 丢弃时分秒，只保留日历日期
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameOrAfter t 的日历日期 >= other 的日历日期
func SameOrAfter(t, other time.Time) bool {
	return !DateOnly(t).Before(DateOnly(other))
}

// SameOrBefore t 的日历日期 <= other 的日历日期
func SameOrBefore(t, other time.Time) bool {
	return !DateOnly(t).After(DateOnly(other))
}

// WithinDates start <= t <= end，按日历日期比较，两端均为闭区间
func WithinDates(t, start, end time.Time) bool {
	return SameOrAfter(t, start) && SameOrBefore(t, end)
}
