package domain_util

import "time"

// ISOTimestampLayout 与 JavaScript Date.toISOString 输出一致，UTC 毫秒精度
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

func ParseISOTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(ISOTimestampLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}

// NextTimestamp 返回严格晚于 prev 的时间戳；prev 无法解析时直接使用 now
func NextTimestamp(prev string, now time.Time) string {
	now = now.UTC().Truncate(time.Millisecond)
	if p, err := ParseISOTimestamp(prev); err == nil {
		p = p.UTC().Truncate(time.Millisecond)
		if !now.After(p) {
			now = p.Add(time.Millisecond)
		}
	}
	return ISOTimestamp(now)
}
