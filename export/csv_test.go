package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

func dateOnly(t *testing.T, s string) common.DateOnly {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return common.NewDateOnly(parsed)
}

func TestAnnouncementsCSV(t *testing.T) {
	items := []v1.AnnouncementDTO{{
		Title:       "A",
		Category:    "General",
		Priority:    "Low",
		StartDate:   dateOnly(t, "2024-01-01"),
		EndDate:     dateOnly(t, "2024-01-02"),
		Description: "d",
	}}

	got := AnnouncementsCSV(items)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3) // header, row, trailing newline
	assert.Equal(t, "Title,Category,Date Range,Priority,Description", lines[0])
	assert.Equal(t, `"A","General","1/1/2024 - 1/2/2024","Low","d"`, lines[1])
	assert.Equal(t, "", lines[2])
}

func TestAnnouncementsCSVQuoting(t *testing.T) {
	items := []v1.AnnouncementDTO{{
		Title:       `Say "hello", world`,
		Category:    "Event",
		Priority:    "High",
		StartDate:   dateOnly(t, "2024-12-09"),
		EndDate:     dateOnly(t, "2024-12-10"),
		Description: "a, b",
	}}

	got := AnnouncementsCSV(items)
	assert.Contains(t, got, `"Say ""hello"", world","Event","12/9/2024 - 12/10/2024","High","a, b"`)
}

func TestAnnouncementsCSVEmptyListKeepsHeader(t *testing.T) {
	got := AnnouncementsCSV(nil)
	assert.Equal(t, "Title,Category,Date Range,Priority,Description\n", got)
}

func TestAnnouncementsCSVFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "announcements_1700000000123.csv", AnnouncementsCSVFilename(now))
}
