package v1

import (
	"encoding/json"
	"fmt"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type ShiftDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StartTime     string   `json:"startTime"` // HH:mm
	EndTime       string   `json:"endTime"`   // HH:mm
	BreakDuration int      `json:"breakDuration"`
	GraceTime     int      `json:"graceTime"`
	WorkingDays   []string `json:"workingDays"`
	IsActive      bool     `json:"isActive"`
	Description   string   `json:"description,omitempty"`
}

func (s ShiftDTO) Identifier() string { return s.ID }

type ShiftInput struct {
	Name          string   `json:"name"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	BreakDuration int      `json:"breakDuration"`
	GraceTime     int      `json:"graceTime"`
	WorkingDays   []string `json:"workingDays"`
	IsActive      bool     `json:"isActive"`
	Description   string   `json:"description,omitempty"`
}

type ShiftEndpoint struct {
	transport *Transport
}

type shiftEnvelope struct {
	Data ShiftDTO `json:"data"`
}

// shifts come back as a bare array
func (ep *ShiftEndpoint) List() (*common.ListResult[ShiftDTO], error) {
	resp, err := ep.transport.Get("/shifts", nil)
	if err != nil {
		return nil, err
	}

	var shifts []ShiftDTO
	if err := json.Unmarshal(resp.Data, &shifts); err != nil {
		return nil, err
	}

	return &common.ListResult[ShiftDTO]{Items: shifts}, nil
}

func (ep *ShiftEndpoint) Create(in ShiftInput) (*ShiftDTO, error) {
	resp, err := ep.transport.Post("/shifts", in, nil)
	if err != nil {
		return nil, err
	}
	return decodeShift(resp.Data)
}

func (ep *ShiftEndpoint) Update(id string, in ShiftInput) (*ShiftDTO, error) {
	resp, err := ep.transport.Patch(fmt.Sprintf("/shifts/%s", id), in, nil)
	if err != nil {
		return nil, err
	}
	return decodeShift(resp.Data)
}

func (ep *ShiftEndpoint) Delete(id string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/shifts/%s", id))
	return err
}

func decodeShift(data []byte) (*ShiftDTO, error) {
	var envelope shiftEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
