package utils

import "time"

// ParseTimePtr parses an RFC3339 string pointer, as carried by the read-model
// DTO timestamp fields, into *time.Time (UTC). Nil, empty or malformed input
// yields nil so absent deleted_at columns round-trip cleanly.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// TimeOrZero dereferences p, substituting the zero time for nil. Used when
// rehydrating aggregates whose created_at/updated_at must be non-pointer.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
