package v1

import (
	"encoding/json"
	"fmt"
	"strconv"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

type PayrollDTO struct {
	ID          string                `json:"id"`
	Employee    common.EmployeeRefDTO `json:"employee"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	BaseSalary  float64               `json:"baseSalary"`
	Allowances  float64               `json:"allowances"`
	Deductions  float64               `json:"deductions"`
	Bonuses     float64               `json:"bonuses"`
	NetSalary   float64               `json:"netSalary"` // server-computed
	IsPaid      bool                  `json:"isPaid"`
	PaymentDate common.DateOnly       `json:"paymentDate,omitempty"`
}

func (p PayrollDTO) Identifier() string { return p.ID }

type PayrollListParams struct {
	Month  int
	Year   int
	IsPaid *bool
	Page   int
	Limit  int
}

func (p PayrollListParams) query() map[string]string {
	q := map[string]string{}
	if p.Month > 0 {
		q["month"] = strconv.Itoa(p.Month)
	}
	if p.Year > 0 {
		q["year"] = strconv.Itoa(p.Year)
	}
	if p.IsPaid != nil {
		q["isPaid"] = strconv.FormatBool(*p.IsPaid)
	}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// PayrollEditInput covers the fields an admin may adjust after
// generation. Base salary and net salary stay server-owned.
type PayrollEditInput struct {
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	Bonuses    float64 `json:"bonuses"`
}

type PayrollEndpoint struct {
	transport *Transport
}

// payroll list envelope: {payrolls, totalPages, currentPage}
type payrollListEnvelope struct {
	Payrolls    []PayrollDTO `json:"payrolls"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

type payrollEnvelope struct {
	Payroll PayrollDTO `json:"payroll"`
}

func (ep *PayrollEndpoint) List(params PayrollListParams) (*common.ListResult[PayrollDTO], error) {
	resp, err := ep.transport.Get("/payrolls", params.query())
	if err != nil {
		return nil, err
	}

	var envelope payrollListEnvelope
	if err := json.Unmarshal(resp.Data, &envelope); err != nil {
		return nil, err
	}

	return &common.ListResult[PayrollDTO]{
		Items: envelope.Payrolls,
		Pagination: common.Pagination{
			CurrentPage: envelope.CurrentPage,
			TotalPages:  envelope.TotalPages,
		},
	}, nil
}

// GenerateMonth asks the server to create payroll rows for every active
// employee for the given month.
func (ep *PayrollEndpoint) GenerateMonth(month, year int) error {
	payload := map[string]int{"month": month, "year": year}
	_, err := ep.transport.Post("/payrolls/generate-month", payload, nil)
	return err
}

func (ep *PayrollEndpoint) Update(id string, in PayrollEditInput) (*PayrollDTO, error) {
	resp, err := ep.transport.Patch(fmt.Sprintf("/payrolls/%s", id), in, nil)
	if err != nil {
		return nil, err
	}
	return decodePayroll(resp.Data)
}

// MarkPaid flips isPaid and stamps the payment date server-side. There
// is no inverse endpoint; the transition is one-way.
func (ep *PayrollEndpoint) MarkPaid(id string) (*PayrollDTO, error) {
	resp, err := ep.transport.Patch(fmt.Sprintf("/payrolls/%s/pay", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodePayroll(resp.Data)
}

func decodePayroll(data []byte) (*PayrollDTO, error) {
	var envelope payrollEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Payroll, nil
}
