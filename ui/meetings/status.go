package meetings

import (
	"time"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
)

// Display statuses derived from the clock; never persisted.
const (
	StatusUpcoming   = "Upcoming"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Status computes the badge for a meeting at the given instant. It is a
// pure function of (now, meeting) so tests can pin the clock.
func Status(now time.Time, m v1.MeetingDTO) string {
	switch {
	case now.Before(m.StartTime.Time):
		return StatusUpcoming
	case now.Before(m.EndTime.Time):
		return StatusInProgress
	default:
		return StatusCompleted
	}
}

// MyRSVP returns the participant entry for the given employee, or nil if
// they are not invited.
func MyRSVP(m v1.MeetingDTO, employeeID string) *v1.ParticipantDTO {
	for i := range m.Participants {
		if m.Participants[i].Employee.ID == employeeID {
			return &m.Participants[i]
		}
	}
	return nil
}
