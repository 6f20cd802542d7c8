package common

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly carries calendar dates (announcement ranges, payment dates)
// across the wire as yyyy-MM-dd strings.
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: t}
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		// absent dates come back as empty strings
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

// Wire returns the yyyy-MM-dd form, or "" for the zero date.
func (d DateOnly) Wire() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
