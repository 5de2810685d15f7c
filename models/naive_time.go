// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// NaiveTimeLayout is the wire format of a timestamp without an offset.
// Fractional seconds are printed only when present.
const NaiveTimeLayout = "2006-01-02T15:04:05.999999"

// DateLayout is the calendar-date format used by date filters and stats.
const DateLayout = "2006-01-02"

// naiveInputLayouts are the offset-less layouts accepted on input.
var naiveInputLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

// ErrInvalidTimestamp is returned when a timestamp cannot be parsed by any
// of the accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// NaiveTime is a timestamp stored and serialized without a time zone offset.
// By convention the wall clock it carries is UTC.
type NaiveTime struct {
	time.Time
}

// NewNaiveTime normalizes t to UTC and drops sub-microsecond precision, which
// neither PostgreSQL nor the wire format keeps.
func NewNaiveTime(t time.Time) NaiveTime {
	return NaiveTime{Time: t.UTC().Truncate(time.Microsecond)}
}

// ParseNaiveTime parses s. Values carrying an offset (RFC 3339) are converted
// to UTC and the offset is dropped; offset-less values are read as UTC.
func ParseNaiveTime(s string) (NaiveTime, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewNaiveTime(t), nil
	}

	for _, layout := range naiveInputLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NewNaiveTime(t), nil
		}
	}

	return NaiveTime{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// String returns the naive ISO-8601 representation.
func (n NaiveTime) String() string {
	return n.UTC().Format(NaiveTimeLayout)
}

// MarshalJSON implements [json.Marshaler].
func (n NaiveTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *NaiveTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected a string", ErrInvalidTimestamp)
	}

	parsed, err := ParseNaiveTime(s)
	if err != nil {
		return err
	}

	*n = parsed
	return nil
}

// Value implements [driver.Valuer]. The database column has no time zone,
// so the UTC wall clock is written as is.
func (n NaiveTime) Value() (driver.Value, error) {
	return n.UTC(), nil
}

// Scan implements [sql.Scanner] for both time.Time (pgx, sqlite3 with a
// declared TIMESTAMP column) and textual values.
func (n *NaiveTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		// the stored wall clock is already UTC; re-anchor it without shifting
		*n = NewNaiveTime(time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC))
		return nil
	case string:
		parsed, err := ParseNaiveTime(v)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	case []byte:
		return n.Scan(string(v))
	case nil:
		*n = NaiveTime{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimestamp, src)
	}
}
