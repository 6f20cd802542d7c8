package shifts

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/notify"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newFixture(t *testing.T, setup func(r *gin.Engine)) (*Actions, *notify.Recorder) {
	t.Helper()
	r := gin.New()
	setup(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	client := v1.NewPeopleHubClient(srv.URL, "t")
	rec := notify.NewRecorder()
	return NewActions(client.Shifts, rec), rec
}

func TestCreateRefetchesList(t *testing.T) {
	listCalls := 0
	actions, rec := newFixture(t, func(r *gin.Engine) {
		r.GET("/shifts", func(c *gin.Context) {
			listCalls++
			c.JSON(http.StatusOK, []gin.H{
				{"id": "s1", "name": "Morning", "startTime": "09:00", "endTime": "17:00", "isActive": true},
			})
		})
		r.POST("/shifts", func(c *gin.Context) {
			var in v1.ShiftInput
			require.NoError(t, c.ShouldBindJSON(&in))
			c.JSON(http.StatusCreated, gin.H{"data": gin.H{
				"id": "s1", "name": in.Name, "startTime": in.StartTime, "endTime": in.EndTime,
				"isActive": in.IsActive, "workingDays": in.WorkingDays,
			}})
		})
	})

	require.NoError(t, actions.Create(v1.ShiftInput{
		Name: "Morning", StartTime: "09:00", EndTime: "17:00",
		WorkingDays: []string{"Monday"}, IsActive: true,
	}))

	notes := rec.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Shift created successfully", notes[0].Message)
	assert.Equal(t, 1, listCalls)
	assert.Equal(t, 1, actions.Store().Len())
}

func TestStatusFilter(t *testing.T) {
	actions, _ := newFixture(t, func(r *gin.Engine) {
		r.GET("/shifts", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{"id": "s1", "name": "Morning", "startTime": "09:00", "endTime": "17:00", "isActive": true},
				{"id": "s2", "name": "Night", "startTime": "22:00", "endTime": "06:00", "isActive": false},
			})
		})
	})

	lv := NewListView(actions)
	require.NoError(t, lv.Mount())

	lv.SetStatusFilter(StatusInactive)
	rows := lv.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Night", rows[0].Name)

	lv.SetStatusFilter(StatusAll)
	assert.Len(t, lv.Rows(), 2)

	lv.SetSearch("morn")
	rows = lv.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Morning", rows[0].Name)
}

func TestFormDefaults(t *testing.T) {
	f := NewForm()
	f.OpenCreate()
	v := f.Values()
	assert.Equal(t, "09:00", v.StartTime)
	assert.Equal(t, "17:00", v.EndTime)
	assert.Equal(t, "60", v.BreakDuration)
	assert.Equal(t, "15", v.GraceTime)
	assert.True(t, v.IsActive)
	assert.Empty(t, v.WorkingDays)
}

func TestFormValidation(t *testing.T) {
	f := NewForm()
	f.OpenCreate()
	f.SetField("name", "Night")

	err := f.Submit(func(string, v1.ShiftInput) error {
		t.Fatal("must not submit without working days")
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, "Select at least one working day", f.Errors()["workingDays"])

	f.ToggleWorkingDay("Noday") // not a weekday, ignored
	assert.Empty(t, f.Values().WorkingDays)

	f.ToggleWorkingDay("Monday")
	f.ToggleWorkingDay("Tuesday")

	f.SetField("startTime", "25:00")
	err = f.Submit(func(string, v1.ShiftInput) error { return nil })
	require.Error(t, err)
	assert.Equal(t, "Must be HH:mm", f.Errors()["startTime"])

	f.SetField("startTime", "17:00")
	f.SetField("endTime", "17:00")
	err = f.Submit(func(string, v1.ShiftInput) error { return nil })
	require.Error(t, err)
	assert.Equal(t, "End time must differ from start time", f.Errors()["endTime"])

	// overnight shifts pass
	f.SetField("startTime", "22:00")
	f.SetField("endTime", "06:00")
	f.SetField("breakDuration", "30")
	var got v1.ShiftInput
	require.NoError(t, f.Submit(func(_ string, in v1.ShiftInput) error {
		got = in
		return nil
	}))
	assert.Equal(t, []string{"Monday", "Tuesday"}, got.WorkingDays)
	assert.Equal(t, 30, got.BreakDuration)
	assert.Equal(t, 15, got.GraceTime)
	assert.False(t, f.IsOpen())
}

func TestFormRejectsNegativeMinutes(t *testing.T) {
	f := NewForm()
	f.OpenCreate()
	f.SetField("name", "Morning")
	f.ToggleWorkingDay("Monday")
	f.SetField("graceTime", "-5")

	err := f.Submit(func(string, v1.ShiftInput) error { return nil })
	require.Error(t, err)
	assert.Equal(t, "Must be a non-negative number of minutes", f.Errors()["graceTime"])
}
