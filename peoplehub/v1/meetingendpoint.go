package v1

import (
	"encoding/json"
	"fmt"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

// Meeting types and participant RSVP statuses.
const (
	MeetingTypeGeneral  = "general"
	MeetingTypeStandup  = "standup"
	MeetingTypeReview   = "review"
	MeetingTypePlanning = "planning"
	MeetingTypeOneOnOne = "one-on-one"
	MeetingTypeAllHands = "all-hands"

	RSVPPending  = "pending"
	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
)

var MeetingTypes = []string{
	MeetingTypeGeneral,
	MeetingTypeStandup,
	MeetingTypeReview,
	MeetingTypePlanning,
	MeetingTypeOneOnOne,
	MeetingTypeAllHands,
}

type ParticipantDTO struct {
	Employee common.EmployeeRefDTO `json:"employee"`
	Status   string                `json:"status"`
}

type MeetingDTO struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	StartTime    common.UTCDateTime `json:"startTime"`
	EndTime      common.UTCDateTime `json:"endTime"`
	Location     string             `json:"location,omitempty"`
	MeetingLink  string             `json:"meetingLink,omitempty"`
	Type         string             `json:"type"`
	Participants []ParticipantDTO   `json:"participants"`
	Agenda       string             `json:"agenda,omitempty"`
}

func (m MeetingDTO) Identifier() string { return m.ID }

// MeetingInput is the create/update payload; participants are employee
// ids, the server resets RSVP state for newly added ones.
type MeetingInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location,omitempty"`
	MeetingLink  string   `json:"meetingLink,omitempty"`
	Type         string   `json:"type"`
	Participants []string `json:"participants"`
	Agenda       string   `json:"agenda,omitempty"`
}

type MeetingEndpoint struct {
	transport *Transport
}

type meetingEnvelope struct {
	Meeting MeetingDTO `json:"meeting"`
}

// meetings come back as a bare array, no pagination block
func (ep *MeetingEndpoint) list(path string) (*common.ListResult[MeetingDTO], error) {
	resp, err := ep.transport.Get(path, nil)
	if err != nil {
		return nil, err
	}

	var meetings []MeetingDTO
	if err := json.Unmarshal(resp.Data, &meetings); err != nil {
		return nil, err
	}

	return &common.ListResult[MeetingDTO]{Items: meetings}, nil
}

// List returns every meeting (admin view).
func (ep *MeetingEndpoint) List() (*common.ListResult[MeetingDTO], error) {
	return ep.list("/meetings")
}

// ListMine returns meetings the calling employee participates in.
func (ep *MeetingEndpoint) ListMine() (*common.ListResult[MeetingDTO], error) {
	return ep.list("/meetings/my")
}

func (ep *MeetingEndpoint) Create(in MeetingInput) (*MeetingDTO, error) {
	resp, err := ep.transport.Post("/meetings", in, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeeting(resp.Data)
}

func (ep *MeetingEndpoint) Update(id string, in MeetingInput) (*MeetingDTO, error) {
	resp, err := ep.transport.Patch(fmt.Sprintf("/meetings/%s", id), in, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeeting(resp.Data)
}

func (ep *MeetingEndpoint) Delete(id string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/meetings/%s", id))
	return err
}

// UpdateStatus records the calling participant's RSVP (accepted or
// declined). Participants only ever mutate their own status.
func (ep *MeetingEndpoint) UpdateStatus(id, status string) (*MeetingDTO, error) {
	path := fmt.Sprintf("/meetings/%s/status", id)
	resp, err := ep.transport.Patch(path, map[string]string{"status": status}, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeeting(resp.Data)
}

func decodeMeeting(data []byte) (*MeetingDTO, error) {
	var envelope meetingEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Meeting, nil
}
