package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplehub.com/peoplehub/utils"
)

func TestPayrollListParams(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/payrolls", func(c *gin.Context) {
			assert.Equal(t, "4", c.Query("month"))
			assert.Equal(t, "2024", c.Query("year"))
			assert.Equal(t, "false", c.Query("isPaid"))
			c.JSON(http.StatusOK, gin.H{
				"payrolls": []gin.H{{
					"id":       "p1",
					"employee": gin.H{"id": "e1", "name": "Ana"},
					"month":    4, "year": 2024,
					"baseSalary": 5000.0, "netSalary": 5230.0, "isPaid": false,
				}},
				"totalPages":  2,
				"currentPage": 1,
			})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	result, err := client.Payrolls.List(PayrollListParams{
		Month: 4, Year: 2024, IsPaid: utils.Ptr(false), Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 5230.0, result.Items[0].NetSalary)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

func TestPayrollMarkPaid(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.PATCH("/payrolls/:id/pay", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"payroll": gin.H{
				"id":       c.Param("id"),
				"employee": gin.H{"id": "e1", "name": "Ana"},
				"month":    4, "year": 2024,
				"isPaid": true, "paymentDate": "2024-05-01",
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	paid, err := client.Payrolls.MarkPaid("p1")
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, 2024, paid.PaymentDate.Year())
}

func TestPayrollGenerateMonth(t *testing.T) {
	var got map[string]int
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/payrolls/generate-month", func(c *gin.Context) {
			require.NoError(t, c.ShouldBindJSON(&got))
			c.JSON(http.StatusCreated, gin.H{"message": "generated"})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	require.NoError(t, client.Payrolls.GenerateMonth(4, 2024))
	assert.Equal(t, map[string]int{"month": 4, "year": 2024}, got)
}

func TestDocumentVerifyCarriesRemarks(t *testing.T) {
	var got map[string]string
	srv := newTestServer(t, func(r *gin.Engine) {
		r.PATCH("/employee-documents/:id/verify", func(c *gin.Context) {
			require.NoError(t, c.ShouldBindJSON(&got))
			c.JSON(http.StatusOK, gin.H{"document": gin.H{
				"id": c.Param("id"), "title": "Contract", "status": "verified", "remarks": got["remarks"],
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")
	doc, err := client.Documents.Verify("d1", "looks good")
	require.NoError(t, err)
	assert.Equal(t, DocumentStatusVerified, doc.Status)
	assert.Equal(t, "looks good", doc.Remarks)
	assert.Equal(t, map[string]string{"remarks": "looks good"}, got)
}

func TestDocumentCategoryEnvelope(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/document-categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": []gin.H{
				{"id": "c1", "name": "Contracts", "isActive": true},
				{"id": "c2", "name": "Certificates", "isActive": false},
			}})
		})
		r.POST("/document-categories", func(c *gin.Context) {
			var in DocumentCategoryInput
			require.NoError(t, c.ShouldBindJSON(&in))
			c.JSON(http.StatusCreated, gin.H{"data": gin.H{
				"id": "c3", "name": in.Name, "description": in.Description, "isActive": in.IsActive,
			}})
		})
	})

	client := NewPeopleHubClient(srv.URL, "t")

	result, err := client.DocumentCategories.List()
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].IsActive)

	created, err := client.DocumentCategories.Create(DocumentCategoryInput{Name: "Payslips", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "c3", created.ID)
	assert.Equal(t, "Payslips", created.Name)
}
