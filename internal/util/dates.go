package util

import (
	"math"
	"time"
)

// NormalizeDay 截断到 UTC 零点
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey 返回 UTC 日期字符串 YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// EndOfDay 返回下一个 UTC 零点
func EndOfDay(t time.Time) time.Time {
	return NormalizeDay(t).AddDate(0, 0, 1)
}

// Round2 四舍五入保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDate 支持 RFC3339、"2006-01-02 15:04:05" 和纯日期，统一返回 UTC
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, TimeFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date: " + s)
	}
	return t.UTC(), nil
}
