package models

import "time"

// ParseTimestamp decodes a backend timestamp string. Records without a
// usable createdAt sort as the epoch rather than being dropped.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}
