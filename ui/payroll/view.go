package payroll

import (
	"fmt"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

const defaultPageSize = 10

// Paid filter values.
const (
	PaidFilterAll    = "all"
	PaidFilterPaid   = "paid"
	PaidFilterUnpaid = "unpaid"
)

// ListView drives the payroll table. Month, year and paid-state filters
// are server-side; search narrows the fetched page by employee name.
type ListView struct {
	actions    *Actions
	search     string
	month      int
	year       int
	paidFilter string
	page       int
	pageSize   int
	confirm    uikit.ConfirmDialog
}

func NewListView(actions *Actions) *ListView {
	return &ListView{
		actions:    actions,
		paidFilter: PaidFilterAll,
		page:       1,
		pageSize:   defaultPageSize,
	}
}

func (lv *ListView) Mount() error {
	return lv.reload()
}

func (lv *ListView) reload() error {
	params := v1.PayrollListParams{
		Month: lv.month,
		Year:  lv.year,
		Page:  lv.page,
		Limit: lv.pageSize,
	}
	switch lv.paidFilter {
	case PaidFilterPaid:
		params.IsPaid = utils.Ptr(true)
	case PaidFilterUnpaid:
		params.IsPaid = utils.Ptr(false)
	}
	return lv.actions.Load(params)
}

func (lv *ListView) SetSearch(q string) {
	lv.search = q
}

// SetPeriod filters by month/year; zero means no filter.
func (lv *ListView) SetPeriod(month, year int) error {
	lv.month = month
	lv.year = year
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) SetPaidFilter(filter string) error {
	lv.paidFilter = filter
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) SetPage(page int) error {
	total := lv.actions.Store().Pagination().TotalPages
	lv.page = uikit.ClampPage(page, total)
	return lv.reload()
}

func (lv *ListView) SetPageSize(size int) error {
	if size > 0 {
		lv.pageSize = size
	}
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) Page() int { return lv.page }

func (lv *ListView) Rows() []v1.PayrollDTO {
	return utils.Filter(lv.actions.Store().Items(), func(p v1.PayrollDTO) bool {
		return uikit.MatchesSearch(lv.search, p.Employee.Name, p.Employee.Email)
	})
}

func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

// CanMarkPaid gates the action: once paid, the transition is never
// offered again.
func CanMarkPaid(p v1.PayrollDTO) bool {
	return !p.IsPaid
}

// ConfirmMarkPaid arms the dialog; the summary names the employee and
// period so the admin pays the right record.
func (lv *ListView) ConfirmMarkPaid(p v1.PayrollDTO) {
	if !CanMarkPaid(p) {
		return
	}
	summary := fmt.Sprintf("%s - %d/%d (net %.2f)", p.Employee.Name, p.Month, p.Year, p.NetSalary)
	lv.confirm.Open(summary, func() error {
		return lv.actions.MarkPaid(p.ID)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}
