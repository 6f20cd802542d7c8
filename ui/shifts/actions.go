// Package shifts implements the work shift reference-data screen. The
// list is unpaginated but other screens derive schedule state from it,
// so mutations re-fetch to pick up server-side normalization.
package shifts

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

type Actions struct {
	api        *v1.ShiftEndpoint
	collection *store.Collection[v1.ShiftDTO]
	notifier   notify.Notifier
}

func NewActions(api *v1.ShiftEndpoint, notifier notify.Notifier) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.ShiftDTO](),
		notifier:   notifier,
	}
}

func (a *Actions) Store() *store.Collection[v1.ShiftDTO] {
	return a.collection
}

func (a *Actions) Load() error {
	token := a.collection.BeginFetch()
	result, err := a.api.List()
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

func (a *Actions) Create(in v1.ShiftInput) error {
	created, err := a.api.Create(in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to create shift"))
		return err
	}
	a.collection.ApplyCreate(*created)
	a.notifier.Success("Shift created successfully")
	_ = a.Load()
	return nil
}

func (a *Actions) Update(id string, in v1.ShiftInput) error {
	updated, err := a.api.Update(id, in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update shift"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Shift updated successfully")
	_ = a.Load()
	return nil
}

func (a *Actions) Delete(id string) error {
	if err := a.api.Delete(id); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to delete shift"))
		return err
	}
	a.collection.ApplyDelete(id)
	a.notifier.Success("Shift deleted successfully")
	_ = a.Load()
	return nil
}
