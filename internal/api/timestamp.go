package api

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout matches ISO timestamps without a zone, such as
// "2025-02-11T09:00:00" or "2025-02-11T09:00:00.123456".
const naiveLayout = "2006-01-02T15:04:05.999999999"

// parseTimestamp accepts RFC 3339 and zone-less ISO timestamps. The
// portal stores naive values in UTC, so those are read as UTC.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// decodeTimestamp reads an optional JSON string timestamp. Null and an
// absent value give the zero time.
func decodeTimestamp(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	return parseTimestamp(*s)
}

func (s *StudySession) UnmarshalJSON(data []byte) error {
	type plain StudySession
	var raw struct {
		plain
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := decodeTimestamp(raw.StartTime)
	if err != nil {
		return err
	}
	end, err := decodeTimestamp(raw.EndTime)
	if err != nil {
		return err
	}

	*s = StudySession(raw.plain)
	s.StartTime = start
	s.EndTime = end
	return nil
}

func (r *RecentSession) UnmarshalJSON(data []byte) error {
	type plain RecentSession
	var raw struct {
		plain
		CreatedAt *string `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	created, err := decodeTimestamp(raw.CreatedAt)
	if err != nil {
		return err
	}

	*r = RecentSession(raw.plain)
	r.CreatedAt = created
	return nil
}
