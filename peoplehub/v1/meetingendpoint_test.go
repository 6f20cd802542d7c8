package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingListBareArray(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/meetings", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{
					"id": "m1", "title": "Standup", "type": "standup",
					"startTime": "2024-06-03T09:00:00Z", "endTime": "2024-06-03T09:15:00Z",
					"participants": []gin.H{
						{"employee": gin.H{"id": "e1", "name": "Ana"}, "status": "accepted"},
						{"employee": gin.H{"id": "e2", "name": "Ben"}, "status": "pending"},
					},
				},
			})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	result, err := client.Meetings.List()
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	m := result.Items[0]
	assert.Equal(t, "Standup", m.Title)
	assert.Equal(t, 9, m.StartTime.Hour())
	require.Len(t, m.Participants, 2)
	assert.Equal(t, RSVPAccepted, m.Participants[0].Status)
	// pagination block absent for bare arrays
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestMeetingUpdateStatus(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.PATCH("/meetings/:id/status", func(c *gin.Context) {
			var body map[string]string
			require.NoError(t, c.ShouldBindJSON(&body))
			assert.Equal(t, "declined", body["status"])
			c.JSON(http.StatusOK, gin.H{"meeting": gin.H{
				"id": c.Param("id"), "title": "Standup", "type": "standup",
				"startTime": "2024-06-03T09:00:00Z", "endTime": "2024-06-03T09:15:00Z",
				"participants": []gin.H{
					{"employee": gin.H{"id": "e2", "name": "Ben"}, "status": "declined"},
				},
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	updated, err := client.Meetings.UpdateStatus("m1", RSVPDeclined)
	require.NoError(t, err)
	assert.Equal(t, "m1", updated.ID)
	assert.Equal(t, RSVPDeclined, updated.Participants[0].Status)
}

func TestMeetingCreate(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/meetings", func(c *gin.Context) {
			var in MeetingInput
			require.NoError(t, c.ShouldBindJSON(&in))
			assert.Equal(t, []string{"e1", "e2"}, in.Participants)
			c.JSON(http.StatusCreated, gin.H{"meeting": gin.H{
				"id": "m7", "title": in.Title, "type": in.Type,
				"startTime": in.StartTime, "endTime": in.EndTime,
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	created, err := client.Meetings.Create(MeetingInput{
		Title:        "Planning",
		Type:         MeetingTypePlanning,
		StartTime:    "2024-06-10T10:00:00Z",
		EndTime:      "2024-06-10T11:00:00Z",
		Participants: []string{"e1", "e2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "m7", created.ID)
}
