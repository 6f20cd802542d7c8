package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

func TestAnnouncementsXLSX(t *testing.T) {
	items := []v1.AnnouncementDTO{
		{
			Title:       "Town hall",
			Category:    "Event",
			Priority:    "Medium",
			StartDate:   dateOnly(t, "2024-03-01"),
			EndDate:     dateOnly(t, "2024-03-01"),
			Description: "quarterly",
		},
	}

	data, err := AnnouncementsXLSX(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Announcements")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Title", "Category", "Date Range", "Priority", "Description"}, rows[0])
	assert.Equal(t, []string{"Town hall", "Event", "3/1/2024 - 3/1/2024", "Medium", "quarterly"}, rows[1])
}

func TestPayslipPDF(t *testing.T) {
	data, err := PayslipPDF(v1.PayrollDTO{
		ID:         "p1",
		Employee:   common.EmployeeRefDTO{ID: "e1", Name: "Dana Flores", Email: "dana@example.com"},
		Month:      4,
		Year:       2024,
		BaseSalary: 5000,
		Allowances: 300,
		Deductions: 120,
		Bonuses:    50,
		NetSalary:  5230,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
