package common

import (
	"encoding/json"
	"time"
)

// UTCDateTime carries instants (meeting start/end, upload timestamps)
// as RFC3339 strings, the format the HRMS API emits for Date fields.
type UTCDateTime struct {
	time.Time
}

func NewUTCDateTime(t time.Time) UTCDateTime {
	return UTCDateTime{Time: t.UTC()}
}

func (u *UTCDateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		u.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// some deployments strip the zone suffix
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return err
		}
	}
	u.Time = t
	return nil
}

func (u UTCDateTime) MarshalJSON() ([]byte, error) {
	if u.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(u.UTC().Format(time.RFC3339))
}
