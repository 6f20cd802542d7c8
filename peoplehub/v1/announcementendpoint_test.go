package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementList(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/announcements", func(c *gin.Context) {
			assert.Equal(t, "Urgent", c.Query("category"))
			assert.Equal(t, "", c.Query("priority")) // "all" is not forwarded
			assert.Equal(t, "2", c.Query("page"))
			assert.Equal(t, "10", c.Query("limit"))
			c.JSON(http.StatusOK, gin.H{
				"announcements": []gin.H{
					{"id": "a1", "title": "Server room closed", "category": "Urgent", "priority": "High",
						"description": "maintenance", "startDate": "2024-05-01", "endDate": "2024-05-02"},
				},
				"totalPages":         4,
				"totalAnnouncements": 37,
				"currentPage":        2,
			})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	result, err := client.Announcements.List(AnnouncementListParams{
		Category: "Urgent", Priority: "all", Page: 2, Limit: 10,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "a1", result.Items[0].ID)
	assert.Equal(t, "Server room closed", result.Items[0].Title)
	assert.Equal(t, 2024, result.Items[0].StartDate.Year())
	assert.Equal(t, 4, result.Pagination.TotalPages)
	assert.Equal(t, 37, result.Pagination.TotalRecords)
	assert.Equal(t, 2, result.Pagination.CurrentPage)
}

func TestAnnouncementCreateMultipart(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/announcements", func(c *gin.Context) {
			assert.Equal(t, "Town hall", c.PostForm("title"))
			assert.Equal(t, "Event", c.PostForm("category"))
			assert.Equal(t, "2024-03-01", c.PostForm("startDate"))
			fh, err := c.FormFile("attachment")
			require.NoError(t, err)
			assert.Equal(t, "agenda.pdf", fh.Filename)
			c.JSON(http.StatusCreated, gin.H{"announcement": gin.H{
				"id": "a9", "title": "Town hall", "category": "Event", "priority": "Medium",
				"startDate": "2024-03-01", "endDate": "2024-03-01",
				"attachmentUrl": "https://files.example.com/agenda.pdf",
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	created, err := client.Announcements.Create(AnnouncementInput{
		Title:      "Town hall",
		Category:   AnnouncementCategoryEvent,
		Priority:   PriorityMedium,
		StartDate:  mustDate(t, "2024-03-01"),
		EndDate:    mustDate(t, "2024-03-01"),
		Attachment: &FileUpload{FieldName: "attachment", FileName: "agenda.pdf", Content: []byte("x")},
	})
	require.NoError(t, err)
	assert.Equal(t, "a9", created.ID)
	assert.Equal(t, "https://files.example.com/agenda.pdf", created.AttachmentURL)
}

func TestAnnouncementDelete(t *testing.T) {
	var deleted string
	srv := newTestServer(t, func(r *gin.Engine) {
		r.DELETE("/announcements/:id", func(c *gin.Context) {
			deleted = c.Param("id")
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	require.NoError(t, client.Announcements.Delete("a3"))
	assert.Equal(t, "a3", deleted)
}
