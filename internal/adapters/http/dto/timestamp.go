package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
)

const dateOnly = "2006-01-02"

var errBadTimestamp = errors.New("must be an RFC 3339 timestamp, a YYYY-MM-DD date or epoch milliseconds")

// Timestamp is a point in time as accepted from clients. Input may be an
// RFC 3339 string, a date (midnight UTC) or a number of milliseconds since
// the Unix epoch. Output is always RFC 3339 in UTC.
type Timestamp time.Time

// Time returns the value as a time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ts).UTC().Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	t, err := parseTimestamp(b)
	if err != nil {
		return domain.NewValidationError("", "timestamp "+err.Error())
	}
	*ts = Timestamp(t)
	return nil
}

func parseTimestamp(b []byte) (time.Time, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return time.Time{}, errBadTimestamp
	}

	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return time.Time{}, errBadTimestamp
		}
		return time.UnixMilli(ms).UTC(), nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, errBadTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, errBadTimestamp
}

// timePtr converts an optional Timestamp for the domain.
func timePtr(ts *Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time()
	return &t
}

// stampPtr converts an optional domain time for a response.
func stampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp(*t)
	return &ts
}
