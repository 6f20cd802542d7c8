package common

// EmployeeRefDTO is the embedded employee reference the API attaches to
// documents, payroll rows and meeting participants.
type EmployeeRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Pagination is the normalized paging block every list endpoint resolves
// into, whatever envelope the feature uses on the wire.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// ListResult is the uniform shape endpoints hand to the stores. Raw
// envelope fields (data, announcements, documents, ...) never leave the
// endpoint layer.
type ListResult[T any] struct {
	Items      []T
	Pagination Pagination
}
