package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNaiveTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-01-15T08:30:00", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{in: "2024-01-15T08:30:00.5", want: time.Date(2024, 1, 15, 8, 30, 0, 500000000, time.UTC)},
		{in: "2024-01-15 08:30:00", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{in: "2024-01-15T08:30", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{in: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2024-01-15T10:30:00+02:00", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{in: "2024-01-15T08:30:00Z", want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{in: "15/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNaiveTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNaiveTime_String(t *testing.T) {
	assert.Equal(t, "2024-01-15T08:30:00", NewNaiveTime(time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)).String())
	assert.Equal(t, "2024-01-15T08:30:00.25", NewNaiveTime(time.Date(2024, 1, 15, 8, 30, 0, 250000000, time.UTC)).String())
}

func TestNewNaiveTime_TruncatesToMicroseconds(t *testing.T) {
	n := NewNaiveTime(time.Date(2024, 1, 15, 8, 30, 0, 123456789, time.UTC))
	assert.Equal(t, 123456000, n.Nanosecond())
}

func TestNaiveTime_JSON(t *testing.T) {
	var n NaiveTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T08:30:00"`), &n))

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T08:30:00"`, string(b))

	assert.ErrorIs(t, json.Unmarshal([]byte(`12345`), &n), ErrInvalidTimestamp)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"tomorrow"`), &n), ErrInvalidTimestamp)
}

func TestNaiveTime_Scan(t *testing.T) {
	want := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{name: "time in utc", src: want},
		{name: "time with a zone keeps the wall clock", src: time.Date(2024, 1, 15, 8, 30, 0, 0, time.FixedZone("X", 3600))},
		{name: "string", src: "2024-01-15 08:30:00"},
		{name: "bytes", src: []byte("2024-01-15T08:30:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NaiveTime
			require.NoError(t, n.Scan(tt.src))
			assert.True(t, want.Equal(n.Time), "got %s", n)
		})
	}

	var n NaiveTime
	assert.Error(t, n.Scan(42))
	require.NoError(t, n.Scan(nil))
	assert.True(t, n.IsZero())
}

func TestNaiveTime_Value(t *testing.T) {
	v, err := NewNaiveTime(time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), v)
}
