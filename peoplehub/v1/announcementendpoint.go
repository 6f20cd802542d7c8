package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

// Announcement categories and priorities accepted by the API.
const (
	AnnouncementCategoryGeneral     = "General"
	AnnouncementCategoryPolicy      = "Policy"
	AnnouncementCategoryEvent       = "Event"
	AnnouncementCategoryTraining    = "Training"
	AnnouncementCategoryUrgent      = "Urgent"
	AnnouncementCategoryBenefits    = "Benefits"
	AnnouncementCategoryRecognition = "Recognition"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

var AnnouncementCategories = []string{
	AnnouncementCategoryGeneral,
	AnnouncementCategoryPolicy,
	AnnouncementCategoryEvent,
	AnnouncementCategoryTraining,
	AnnouncementCategoryUrgent,
	AnnouncementCategoryBenefits,
	AnnouncementCategoryRecognition,
}

var AnnouncementPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type AnnouncementDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Priority      string          `json:"priority"`
	Description   string          `json:"description"`
	StartDate     common.DateOnly `json:"startDate"`
	EndDate       common.DateOnly `json:"endDate"`
	AttachmentURL string          `json:"attachmentUrl,omitempty"`
}

func (a AnnouncementDTO) Identifier() string { return a.ID }

// AnnouncementListParams selects the server-filtered fields; search text
// stays client-side.
type AnnouncementListParams struct {
	Category string
	Priority string
	Page     int
	Limit    int
}

func (p AnnouncementListParams) query() map[string]string {
	q := map[string]string{}
	if p.Category != "" && p.Category != "all" {
		q["category"] = p.Category
	}
	if p.Priority != "" && p.Priority != "all" {
		q["priority"] = p.Priority
	}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// AnnouncementInput is the mutation payload. Attachment carries the new
// file, if any; nil on update keeps the stored one.
type AnnouncementInput struct {
	Title       string
	Category    string
	Priority    string
	Description string
	StartDate   common.DateOnly
	EndDate     common.DateOnly
	Attachment  *FileUpload
}

func (in AnnouncementInput) fields() map[string]string {
	return map[string]string{
		"title":       in.Title,
		"category":    in.Category,
		"priority":    in.Priority,
		"description": in.Description,
		"startDate":   in.StartDate.Wire(),
		"endDate":     in.EndDate.Wire(),
	}
}

type AnnouncementEndpoint struct {
	transport *Transport
}

// announcement list envelope:
// {announcements, totalPages, totalAnnouncements, currentPage}
type announcementListEnvelope struct {
	Announcements      []AnnouncementDTO `json:"announcements"`
	TotalPages         int               `json:"totalPages"`
	TotalAnnouncements int               `json:"totalAnnouncements"`
	CurrentPage        int               `json:"currentPage"`
}

type announcementEnvelope struct {
	Announcement AnnouncementDTO `json:"announcement"`
}

func (ep *AnnouncementEndpoint) List(params AnnouncementListParams) (*common.ListResult[AnnouncementDTO], error) {
	resp, err := ep.transport.Get("/announcements", params.query())
	if err != nil {
		return nil, err
	}

	var envelope announcementListEnvelope
	if err := json.Unmarshal(resp.Data, &envelope); err != nil {
		return nil, err
	}

	return &common.ListResult[AnnouncementDTO]{
		Items: envelope.Announcements,
		Pagination: common.Pagination{
			CurrentPage:  envelope.CurrentPage,
			TotalPages:   envelope.TotalPages,
			TotalRecords: envelope.TotalAnnouncements,
		},
	}, nil
}

func (ep *AnnouncementEndpoint) Create(in AnnouncementInput) (*AnnouncementDTO, error) {
	resp, err := ep.transport.SendMultipart(http.MethodPost, "/announcements", in.fields(), in.Attachment)
	if err != nil {
		return nil, err
	}
	return decodeAnnouncement(resp.Data)
}

func (ep *AnnouncementEndpoint) Update(id string, in AnnouncementInput) (*AnnouncementDTO, error) {
	path := fmt.Sprintf("/announcements/%s", id)
	resp, err := ep.transport.SendMultipart(http.MethodPatch, path, in.fields(), in.Attachment)
	if err != nil {
		return nil, err
	}
	return decodeAnnouncement(resp.Data)
}

func (ep *AnnouncementEndpoint) Delete(id string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/announcements/%s", id))
	return err
}

func decodeAnnouncement(data []byte) (*AnnouncementDTO, error) {
	var envelope announcementEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Announcement, nil
}
