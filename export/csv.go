// Package export renders the client-side downloads: the announcement
// list as CSV or XLSX, and a single payroll record as a payslip PDF.
package export

import (
	"fmt"
	"strings"
	"time"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/utils"
)

var announcementHeader = []string{"Title", "Category", "Date Range", "Priority", "Description"}

// quote always wraps the field in double quotes, doubling any embedded
// ones. encoding/csv only quotes when it must; the exported file quotes
// every field, so the rows are written by hand.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// AnnouncementsCSV renders the filtered announcement list. The header
// line is unquoted; every data field is quoted and dates render as
// "M/D/YYYY - M/D/YYYY".
func AnnouncementsCSV(items []v1.AnnouncementDTO) string {
	var b strings.Builder
	b.WriteString(strings.Join(announcementHeader, ","))
	b.WriteString("\n")

	for _, a := range items {
		row := []string{
			a.Title,
			a.Category,
			utils.DisplayDateRange(a.StartDate.Time, a.EndDate.Time),
			a.Priority,
			a.Description,
		}
		b.WriteString(strings.Join(utils.Map(row, quote), ","))
		b.WriteString("\n")
	}

	return b.String()
}

// AnnouncementsCSVFilename names the download after the export instant:
// announcements_<unix-ms>.csv.
func AnnouncementsCSVFilename(now time.Time) string {
	return fmt.Sprintf("announcements_%d.csv", now.UnixMilli())
}
