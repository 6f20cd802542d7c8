package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

// Document verification statuses.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
)

type DocumentFileDTO struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type EmployeeDocumentDTO struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Employee common.EmployeeRefDTO `json:"employee"`
	Category DocumentCategoryDTO   `json:"category"`
	File     DocumentFileDTO       `json:"file"`
	Status   string                `json:"status"`
	Remarks  string                `json:"remarks,omitempty"`
	Uploaded common.UTCDateTime    `json:"uploadedAt"`
}

func (d EmployeeDocumentDTO) Identifier() string { return d.ID }

type DocumentListParams struct {
	Employee string // admin listing only
	Category string
	Status   string
	Page     int
	Limit    int
}

func (p DocumentListParams) query() map[string]string {
	q := map[string]string{}
	if p.Employee != "" && p.Employee != "all" {
		q["employee"] = p.Employee
	}
	if p.Category != "" && p.Category != "all" {
		q["category"] = p.Category
	}
	if p.Status != "" && p.Status != "all" {
		q["status"] = p.Status
	}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// DocumentUploadInput is the multipart upload payload; File is required
// on create.
type DocumentUploadInput struct {
	Title      string
	EmployeeID string
	CategoryID string
	File       *FileUpload
}

type DocumentEndpoint struct {
	transport *Transport
}

// document list envelope:
// {documents, totalPages, totalDocuments, currentPage}
type documentListEnvelope struct {
	Documents      []EmployeeDocumentDTO `json:"documents"`
	TotalPages     int                   `json:"totalPages"`
	TotalDocuments int                   `json:"totalDocuments"`
	CurrentPage    int                   `json:"currentPage"`
}

type documentEnvelope struct {
	Document EmployeeDocumentDTO `json:"document"`
}

func (ep *DocumentEndpoint) list(path string, params DocumentListParams) (*common.ListResult[EmployeeDocumentDTO], error) {
	resp, err := ep.transport.Get(path, params.query())
	if err != nil {
		return nil, err
	}

	var envelope documentListEnvelope
	if err := json.Unmarshal(resp.Data, &envelope); err != nil {
		return nil, err
	}

	return &common.ListResult[EmployeeDocumentDTO]{
		Items: envelope.Documents,
		Pagination: common.Pagination{
			CurrentPage:  envelope.CurrentPage,
			TotalPages:   envelope.TotalPages,
			TotalRecords: envelope.TotalDocuments,
		},
	}, nil
}

// List returns all documents across employees (admin view).
func (ep *DocumentEndpoint) List(params DocumentListParams) (*common.ListResult[EmployeeDocumentDTO], error) {
	return ep.list("/employee-documents", params)
}

// ListMine returns the calling employee's own documents.
func (ep *DocumentEndpoint) ListMine(params DocumentListParams) (*common.ListResult[EmployeeDocumentDTO], error) {
	params.Employee = ""
	return ep.list("/employee-documents/my", params)
}

func (ep *DocumentEndpoint) Upload(in DocumentUploadInput) (*EmployeeDocumentDTO, error) {
	fields := map[string]string{
		"title":    in.Title,
		"employee": in.EmployeeID,
		"category": in.CategoryID,
	}
	resp, err := ep.transport.SendMultipart(http.MethodPost, "/employee-documents", fields, in.File)
	if err != nil {
		return nil, err
	}
	return decodeDocument(resp.Data)
}

// Verify transitions a pending document to verified, carrying reviewer
// remarks.
func (ep *DocumentEndpoint) Verify(id, remarks string) (*EmployeeDocumentDTO, error) {
	return ep.review(id, "verify", remarks)
}

// Reject transitions a pending document to rejected.
func (ep *DocumentEndpoint) Reject(id, remarks string) (*EmployeeDocumentDTO, error) {
	return ep.review(id, "reject", remarks)
}

func (ep *DocumentEndpoint) review(id, verb, remarks string) (*EmployeeDocumentDTO, error) {
	path := fmt.Sprintf("/employee-documents/%s/%s", id, verb)
	payload := map[string]string{"remarks": remarks}
	resp, err := ep.transport.Patch(path, payload, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocument(resp.Data)
}

func (ep *DocumentEndpoint) Delete(id string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/employee-documents/%s", id))
	return err
}

func decodeDocument(data []byte) (*EmployeeDocumentDTO, error) {
	var envelope documentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Document, nil
}
