// Package payroll implements the payroll administration screen. Net
// salary and payment dates are computed server-side, so every mutation
// re-fetches the list rather than trusting the locally patched row.
package payroll

import (
	"fmt"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

type Actions struct {
	api        *v1.PayrollEndpoint
	collection *store.Collection[v1.PayrollDTO]
	notifier   notify.Notifier
	lastParams v1.PayrollListParams
}

func NewActions(api *v1.PayrollEndpoint, notifier notify.Notifier) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.PayrollDTO](),
		notifier:   notifier,
	}
}

func (a *Actions) Store() *store.Collection[v1.PayrollDTO] {
	return a.collection
}

func (a *Actions) Load(params v1.PayrollListParams) error {
	a.lastParams = params
	token := a.collection.BeginFetch()
	result, err := a.api.List(params)
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

func (a *Actions) Refresh() error {
	return a.Load(a.lastParams)
}

// GenerateMonth creates the month's payroll rows server-side and
// reloads.
func (a *Actions) GenerateMonth(month, year int) error {
	if err := a.api.GenerateMonth(month, year); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to generate payroll"))
		return err
	}
	a.notifier.Success(fmt.Sprintf("Payroll generated for %d/%d", month, year))
	_ = a.Refresh()
	return nil
}

func (a *Actions) Update(id string, in v1.PayrollEditInput) error {
	updated, err := a.api.Update(id, in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update payroll"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Payroll updated successfully")
	_ = a.Refresh()
	return nil
}

// MarkPaid is one-way: there is no un-pay endpoint, and the view stops
// offering the action once isPaid is set.
func (a *Actions) MarkPaid(id string) error {
	updated, err := a.api.MarkPaid(id)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to mark payroll as paid"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Payroll marked as paid")
	_ = a.Refresh()
	return nil
}
